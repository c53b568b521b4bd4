package evaluation

import "fmt"

// Strengths lists categories scoring at least StrengthScore, in set order.
func (s Scoring) Strengths(set CategorySet) []string {
	return s.highlight(set, func(v float64) bool { return v >= s.StrengthScore })
}

// Weaknesses lists categories scoring below WeaknessScore, in set order.
func (s Scoring) Weaknesses(set CategorySet) []string {
	return s.highlight(set, func(v float64) bool { return v < s.WeaknessScore })
}

func (s Scoring) highlight(set CategorySet, keep func(float64) bool) []string {
	out := []string{}
	for _, ev := range set {
		if len(out) == s.MaxHighlights {
			break
		}
		if keep(ev.OverallScore) {
			out = append(out, fmt.Sprintf("%s: %.1f/100", ev.Category, ev.OverallScore))
		}
	}
	return out
}

// Summarize builds the report summary from an aggregate and its categories.
func (s Scoring) Summarize(overall OverallEvaluation, set CategorySet) Summary {
	return Summary{
		TotalScore:          overall.OverallScore,
		Grade:               overall.Grade,
		Strengths:           s.Strengths(set),
		AreasForImprovement: s.Weaknesses(set),
	}
}
