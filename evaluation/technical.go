package evaluation

// detectionModalities contribute their detection rate to video quality.
var detectionModalities = []string{ModalityBodyRotation, ModalityHeadMotion, ModalityExpression}

type technicalScores struct {
	VideoQuality *float64
	AudioQuality *float64
}

func (s technicalScores) entries() []subScore {
	return []subScore{
		{"video_quality", s.VideoQuality},
		{"audio_quality", s.AudioQuality},
	}
}

// evaluateTechnicalQuality infers recording quality from how well the
// detectors and the speech pipeline did.
func evaluateTechnicalQuality(in inputs) CategoryEvaluation {
	r := categoryResult{category: TechnicalQuality}
	var s technicalScores

	var rates []float64
	for _, key := range detectionModalities {
		var m motionView
		if in.decode(key, &m) {
			rates = append(rates, valueOr(m.DetectionRate, 0))
		}
	}
	if len(rates) > 0 {
		var sum float64
		for _, v := range rates {
			sum += v
		}
		switch avg := sum / float64(len(rates)); {
		case avg > 0.9:
			s.VideoQuality = score(95)
			r.add("✓ Excellent video quality")
		case avg > 0.7:
			s.VideoQuality = score(80)
			r.add("✓ Good video quality")
		default:
			s.VideoQuality = score(60)
			r.add("→ Consider improving video quality/lighting")
		}
	}

	if _, ok := in.available(ModalityContent); ok {
		s.AudioQuality = score(90)
		r.add("✓ Good audio quality")
	} else if _, ok := in.available(ModalityDisfluency); ok {
		s.AudioQuality = score(75)
		r.add("✓ Acceptable audio quality")
	} else {
		s.AudioQuality = score(50)
		r.add("⚠ Audio quality issues detected")
	}

	return r.finish(s.entries(), "⚠ Technical quality assessment unavailable")
}
