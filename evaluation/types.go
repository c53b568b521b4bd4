package evaluation

import (
	"time"
)

// Category is one of the five scoring buckets. The value doubles as the
// display name and as the key of CategorySet's JSON object.
type Category string

const (
	BodyLanguage     Category = "Body Language & Posture"
	VocalDelivery    Category = "Vocal Delivery & Speech"
	ContentQuality   Category = "Content Quality & Structure"
	FacialExpression Category = "Facial Expression & Engagement"
	TechnicalQuality Category = "Technical Quality"
)

// categoryOrder is the evaluation order. Suggestion tie-breaks and the
// strengths/weaknesses lists follow it.
var categoryOrder = []Category{
	BodyLanguage,
	VocalDelivery,
	ContentQuality,
	FacialExpression,
	TechnicalQuality,
}

// Categories returns the five categories in evaluation order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func (c Category) String() string { return string(c) }

// CategoryEvaluation is the result of one category evaluator.
type CategoryEvaluation struct {
	OverallScore   float64            `json:"overall_score" yaml:"overall_score"`
	DetailedScores map[string]float64 `json:"detailed_scores" yaml:"detailed_scores"`
	Feedback       []string           `json:"feedback" yaml:"feedback"`
	Category       Category           `json:"category" yaml:"category"`
}

// OverallEvaluation is the weighted composite of the category scores.
type OverallEvaluation struct {
	OverallScore        float64 `json:"overall_score" yaml:"overall_score"`
	Grade               Grade   `json:"grade" yaml:"grade"`
	TotalPossible       int     `json:"total_possible" yaml:"total_possible"`
	CategoryWeights     Weights `json:"category_weights" yaml:"category_weights"`
	EvaluatedCategories int     `json:"evaluated_categories" yaml:"evaluated_categories"`
}

type Summary struct {
	TotalScore          float64  `json:"total_score" yaml:"total_score"`
	Grade               Grade    `json:"grade" yaml:"grade"`
	Strengths           []string `json:"strengths" yaml:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement" yaml:"areas_for_improvement"`
}

// Report is the final output of one evaluation run.
type Report struct {
	EvaluationTimestamp    time.Time         `json:"evaluation_timestamp" yaml:"evaluation_timestamp"`
	OverallEvaluation      OverallEvaluation `json:"overall_evaluation" yaml:"overall_evaluation"`
	CategoryEvaluations    CategorySet       `json:"category_evaluations" yaml:"category_evaluations"`
	ImprovementSuggestions []string          `json:"improvement_suggestions" yaml:"improvement_suggestions"`
	Summary                Summary           `json:"summary" yaml:"summary"`
}

const (
	totalPossible = 100
	defaultScore  = 50.0
)
