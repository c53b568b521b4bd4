package evaluation

import "math"

type bodyScores struct {
	Stability    *float64
	Positioning  *float64
	HeadMovement *float64
	HandGestures *float64
}

func (s bodyScores) entries() []subScore {
	return []subScore{
		{"body_stability", s.Stability},
		{"body_positioning", s.Positioning},
		{"head_movement", s.HeadMovement},
		{"hand_gestures", s.HandGestures},
	}
}

// evaluateBodyLanguage scores posture from body rotation, head motion and
// hand motion.
func evaluateBodyLanguage(in inputs) CategoryEvaluation {
	r := categoryResult{category: BodyLanguage}
	var s bodyScores

	var rot rotationView
	if in.decode(ModalityBodyRotation, &rot) {
		// less rotation spread reads as a steadier stance
		std := valueOr(rot.StdDevAngle, 10)
		s.Stability = score(math.Min(math.Max(0, 100-std*5), 100))

		if len(rot.DirectionPercentages) > 0 {
			center := at(rot.DirectionPercentages, "center")
			switch {
			case center > 70:
				s.Positioning = score(85 + (center-70)*0.5)
				r.add("✓ Good central positioning")
			case center > 50:
				s.Positioning = score(70 + (center-50)*0.75)
				r.add("→ Decent positioning, could be more centered")
			default:
				s.Positioning = score(math.Max(40, center))
				r.add("⚠ Consider maintaining more central positioning")
			}
		}
	}

	var head headView
	if in.decode(ModalityHeadMotion, &head) {
		stability := valueOr(head.StabilityScore, 50)
		switch {
		case stability >= 70 && stability <= 90:
			s.HeadMovement = score(85)
			r.add("✓ Natural head movement patterns")
		case stability > 90:
			s.HeadMovement = score(70)
			r.add("→ Consider more natural head movements")
		default:
			s.HeadMovement = score(math.Max(50, stability))
			r.add("⚠ Head movement could be more controlled")
		}
	}

	var hand handView
	if in.decode(ModalityHandMotion, &hand) {
		level := "low"
		if hand.ActivityLevel != nil {
			level = *hand.ActivityLevel
		}
		switch level {
		case "moderate":
			s.HandGestures = score(85)
			r.add("✓ Good use of hand gestures")
		case "high":
			s.HandGestures = score(70)
			r.add("→ Consider reducing excessive hand movements")
		default:
			s.HandGestures = score(60)
			r.add("→ Could use more hand gestures for emphasis")
		}
	}

	return r.finish(s.entries(), "⚠ Unable to analyze body language - check video quality")
}
