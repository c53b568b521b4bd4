package evaluation

import "time"

// keySuggestions is how many suggestions the quick-access summary carries.
const keySuggestions = 3

// PresentationSummary is the quick-access digest stored next to a run's raw
// results.
type PresentationSummary struct {
	OverallScore     float64  `json:"overall_score" yaml:"overall_score"`
	Grade            Grade    `json:"grade" yaml:"grade"`
	TopStrengths     []string `json:"top_strengths" yaml:"top_strengths"`
	ImprovementAreas []string `json:"improvement_areas" yaml:"improvement_areas"`
	KeySuggestions   []string `json:"key_suggestions" yaml:"key_suggestions"`
}

func (r *Report) PresentationSummary() PresentationSummary {
	return PresentationSummary{
		OverallScore:     r.OverallEvaluation.OverallScore,
		Grade:            r.OverallEvaluation.Grade,
		TopStrengths:     r.Summary.Strengths,
		ImprovementAreas: r.Summary.AreasForImprovement,
		KeySuggestions:   r.ImprovementSuggestions[:min(keySuggestions, len(r.ImprovementSuggestions))],
	}
}

// ScoreCard flattens the report to one score per category.
type ScoreCard struct {
	OverallScore        float64            `json:"overall_score" yaml:"overall_score"`
	Grade               Grade              `json:"grade" yaml:"grade"`
	CategoryScores      map[string]float64 `json:"category_scores" yaml:"category_scores"`
	Strengths           []string           `json:"strengths" yaml:"strengths"`
	ImprovementAreas    []string           `json:"improvement_areas" yaml:"improvement_areas"`
	Suggestions         []string           `json:"suggestions" yaml:"suggestions"`
	EvaluationTimestamp time.Time          `json:"evaluation_timestamp" yaml:"evaluation_timestamp"`
}

func (r *Report) ScoreCard() ScoreCard {
	s := r.PresentationSummary()
	return ScoreCard{
		OverallScore:        s.OverallScore,
		Grade:               s.Grade,
		CategoryScores:      r.CategoryEvaluations.Scores(),
		Strengths:           s.TopStrengths,
		ImprovementAreas:    s.ImprovementAreas,
		Suggestions:         s.KeySuggestions,
		EvaluationTimestamp: r.EvaluationTimestamp,
	}
}

// DetailedFeedback is the per-category breakdown without the summary.
type DetailedFeedback struct {
	DetailedFeedback       CategorySet       `json:"detailed_feedback" yaml:"detailed_feedback"`
	ImprovementSuggestions []string          `json:"improvement_suggestions" yaml:"improvement_suggestions"`
	OverallEvaluation      OverallEvaluation `json:"overall_evaluation" yaml:"overall_evaluation"`
}

func (r *Report) DetailedFeedback() DetailedFeedback {
	return DetailedFeedback{
		DetailedFeedback:       r.CategoryEvaluations,
		ImprovementSuggestions: r.ImprovementSuggestions,
		OverallEvaluation:      r.OverallEvaluation,
	}
}
