package evaluation

import "strings"

// fallbackDuration is the recording length assumed when no motion analyzer
// reported one.
const fallbackDuration = 60.0

type vocalScores struct {
	Fluency *float64
	Pace    *float64
}

func (s vocalScores) entries() []subScore {
	return []subScore{
		{"fluency", s.Fluency},
		{"pace", s.Pace},
	}
}

// evaluateVocalDelivery scores fluency from the disfluency count and pace
// from the transcript length over the recording duration.
func evaluateVocalDelivery(in inputs) CategoryEvaluation {
	r := categoryResult{category: VocalDelivery}
	var s vocalScores

	words := len(strings.Fields(in.transcript))

	var dis disfluencyView
	if in.decode(ModalityDisfluency, &dis) && words > 0 {
		if total, ok := dis.total(); ok {
			rate := total / float64(words) * 100
			switch {
			case rate < 2:
				s.Fluency = score(95)
				r.add("✓ Excellent speech fluency")
			case rate < 5:
				s.Fluency = score(80)
				r.add("✓ Good speech fluency")
			case rate < 10:
				s.Fluency = score(65)
				r.add("→ Some disfluencies present, practice for smoother delivery")
			default:
				s.Fluency = score(45)
				r.add("⚠ High disfluency rate - practice to reduce filler words")
			}
		}
	}

	if words > 0 {
		wpm := float64(words) / in.recordingDuration() * 60
		switch {
		case wpm >= 140 && wpm <= 180:
			s.Pace = score(90)
			r.add("✓ Optimal speaking pace")
		case (wpm >= 120 && wpm < 140) || (wpm > 180 && wpm <= 200):
			s.Pace = score(75)
			r.add("→ Speaking pace is acceptable, could be optimized")
		default:
			s.Pace = score(60)
			if wpm < 120 {
				r.add("→ Consider speaking a bit faster")
			} else {
				r.add("→ Consider slowing down your speaking pace")
			}
		}
	}

	return r.finish(s.entries(), "⚠ Unable to analyze vocal delivery - check audio quality")
}

// recordingDuration borrows the first usable duration from the motion
// analyzers.
func (in inputs) recordingDuration() float64 {
	for _, key := range MotionModalities {
		var m motionView
		if !in.decode(key, &m) {
			continue
		}
		if d, ok := finite(m.DurationSeconds); ok && d > 0 {
			return d
		}
	}
	return fallbackDuration
}
