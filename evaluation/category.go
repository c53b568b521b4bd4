package evaluation

// subScore is one named sub-metric; a nil value was not computed.
type subScore struct {
	name  string
	value *float64
}

func score(v float64) *float64 { return &v }

// categoryResult accumulates one evaluator's feedback and builds the
// CategoryEvaluation from whatever sub-scores were populated.
type categoryResult struct {
	category Category
	feedback []string
}

func (r *categoryResult) add(msg string) { r.feedback = append(r.feedback, msg) }

// finish averages the populated sub-scores. With none populated the score
// is the default and unavailable is appended to the feedback.
func (r *categoryResult) finish(subs []subScore, unavailable string) CategoryEvaluation {
	detailed := make(map[string]float64, len(subs))
	var sum float64
	for _, s := range subs {
		if s.value == nil {
			continue
		}
		detailed[s.name] = *s.value
		sum += *s.value
	}

	overall := defaultScore
	if len(detailed) > 0 {
		overall = sum / float64(len(detailed))
	} else {
		r.add(unavailable)
	}

	feedback := r.feedback
	if feedback == nil {
		feedback = []string{}
	}
	return CategoryEvaluation{
		OverallScore:   round1(overall),
		DetailedScores: detailed,
		Feedback:       feedback,
		Category:       r.category,
	}
}
