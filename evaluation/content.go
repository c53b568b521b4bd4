package evaluation

import "fmt"

// ContentDimensions are the quality dimensions rated by the content analyzer,
// each on a 1-10 scale.
var ContentDimensions = [...]string{
	"clarity",
	"coherence",
	"engagement",
	"relevance",
	"depth",
	"accuracy",
	"tone",
	"conciseness",
	"readability",
}

type contentScores struct {
	Dimensions     [len(ContentDimensions)]*float64
	OverallContent *float64
}

func (s contentScores) entries() []subScore {
	out := make([]subScore, 0, len(s.Dimensions)+1)
	for i, v := range s.Dimensions {
		out = append(out, subScore{ContentDimensions[i], v})
	}
	return append(out, subScore{"overall_content", s.OverallContent})
}

// evaluateContentQuality rescales the content analyzer's ratings to 0-100.
func evaluateContentQuality(in inputs) CategoryEvaluation {
	r := categoryResult{category: ContentQuality}
	var s contentScores

	var c contentView
	if in.decode(ModalityContent, &c) && c.PresentationAnalysis != nil {
		pa := c.PresentationAnalysis
		for i, dim := range ContentDimensions {
			v, ok := finite(pa.ContentQualityMetrics[dim].Score)
			if !ok {
				continue
			}
			s.Dimensions[i] = score(v * 10)
			switch {
			case v >= 8:
				r.add(fmt.Sprintf("✓ Excellent %s", dim))
			case v >= 6:
				r.add(fmt.Sprintf("→ Good %s, room for improvement", dim))
			default:
				r.add(fmt.Sprintf("⚠ %s needs significant improvement", dim))
			}
		}
		if v, ok := finite(pa.OverallScore); ok {
			s.OverallContent = score(v * 10)
		}
	}

	return r.finish(s.entries(), "⚠ Unable to analyze content quality - ensure clear audio")
}
