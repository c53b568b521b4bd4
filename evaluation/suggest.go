package evaluation

import (
	"cmp"
	"slices"
)

var targetedSuggestions = map[Category]string{
	BodyLanguage:     "🎯 Practice maintaining steady posture and using purposeful gestures",
	VocalDelivery:    "🎯 Work on reducing filler words and maintaining optimal speaking pace",
	ContentQuality:   "🎯 Focus on clearer structure and more engaging content delivery",
	FacialExpression: "🎯 Practice showing more varied and positive facial expressions",
	TechnicalQuality: "🎯 Improve recording setup with better lighting and audio equipment",
}

// Score tiers for the general advice appended after the targeted messages.
const (
	beginnerTier = 60.0
	advancedTier = 80.0
)

// Suggest ranks the categories by score and emits a targeted message for each
// weak one among the lowest FocusAreas, then general advice for the overall
// tier. Ties keep the order of set.
func (s Scoring) Suggest(set CategorySet, overall float64) []string {
	ranked := slices.Clone(set)
	slices.SortStableFunc(ranked, func(a, b CategoryEvaluation) int {
		return cmp.Compare(a.OverallScore, b.OverallScore)
	})

	suggestions := []string{}
	for _, ev := range ranked[:min(s.FocusAreas, len(ranked))] {
		if ev.OverallScore >= s.WeaknessScore {
			continue
		}
		if msg, ok := targetedSuggestions[ev.Category]; ok {
			suggestions = append(suggestions, msg)
		}
	}

	switch {
	case overall < beginnerTier:
		suggestions = append(suggestions,
			"📚 Consider taking a presentation skills course or workshop",
			"🎥 Record yourself practicing to identify areas for improvement")
	case overall < advancedTier:
		suggestions = append(suggestions,
			"✨ You're doing well! Focus on polishing your weaker areas",
			"🎤 Practice with friends or colleagues for feedback")
	default:
		suggestions = append(suggestions,
			"🌟 Excellent work! Consider mentoring others or advanced techniques")
	}

	if len(suggestions) > s.MaxSuggestions {
		suggestions = suggestions[:s.MaxSuggestions]
	}
	return suggestions
}
