package evaluation

// Aggregate combines the category scores with the weight table. Categories
// missing from set contribute to neither the weighted sum nor the total
// weight, so the result is renormalized over what was evaluated. An empty set
// yields the default score.
func (s Scoring) Aggregate(set CategorySet) OverallEvaluation {
	var weighted, total float64
	evaluated := 0
	for _, c := range categoryOrder {
		ev, ok := set.Get(c)
		if !ok {
			continue
		}
		w, _ := s.Weights.For(c)
		weighted += ev.OverallScore * w
		total += w
		if len(ev.DetailedScores) > 0 {
			evaluated++
		}
	}

	final := defaultScore
	if total > 0 {
		final = weighted / total
	}
	final = round1(final)

	return OverallEvaluation{
		OverallScore:        final,
		Grade:               GradeFor(final),
		TotalPossible:       totalPossible,
		CategoryWeights:     s.Weights,
		EvaluatedCategories: evaluated,
	}
}
