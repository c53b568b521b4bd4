package evaluation

var (
	positiveEmotions = []string{"Happy", "Surprise"}
	neutralEmotions  = []string{"Neutral"}
	negativeEmotions = []string{"Angry", "Sad"}
)

type facialScores struct {
	EmotionalEngagement *float64
	Expressiveness      *float64
}

func (s facialScores) entries() []subScore {
	return []subScore{
		{"emotional_engagement", s.EmotionalEngagement},
		{"expressiveness", s.Expressiveness},
	}
}

// evaluateFacialExpression scores the averaged emotion probabilities.
func evaluateFacialExpression(in inputs) CategoryEvaluation {
	r := categoryResult{category: FacialExpression}
	var s facialScores

	var expr expressionView
	if in.decode(ModalityExpression, &expr) {
		avg := expr.AverageScores
		positive := sumOf(avg, positiveEmotions)
		neutral := sumOf(avg, neutralEmotions)
		negative := sumOf(avg, negativeEmotions)

		switch {
		case positive > 0.3 && neutral > 0.4 && negative < 0.2:
			s.EmotionalEngagement = score(90)
			r.add("✓ Excellent emotional engagement")
		case positive > 0.2 && negative < 0.3:
			s.EmotionalEngagement = score(75)
			r.add("✓ Good emotional expression")
		default:
			s.EmotionalEngagement = score(60)
			r.add("→ Consider showing more positive engagement")
		}

		variety := 0
		for k := range avg {
			if at(avg, k) > 0.1 {
				variety++
			}
		}
		switch {
		case variety >= 3:
			s.Expressiveness = score(85)
			r.add("✓ Good range of expressions")
		case variety >= 2:
			s.Expressiveness = score(70)
			r.add("→ Decent expressiveness")
		default:
			s.Expressiveness = score(55)
			r.add("→ Could show more varied expressions")
		}
	}

	return r.finish(s.entries(), "⚠ Unable to analyze facial expressions - ensure face is visible")
}

func sumOf(m map[string]float64, keys []string) float64 {
	var total float64
	for _, k := range keys {
		total += at(m, k)
	}
	return total
}
