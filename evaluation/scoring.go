package evaluation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidScoring reports a weight or threshold table that cannot be used.
// It is a configuration problem, never a data-quality one.
var ErrInvalidScoring = errors.New("invalid scoring configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Weights is the per-category weight table. Every entry is required.
type Weights struct {
	BodyLanguage     float64 `json:"body_language" yaml:"body_language" mapstructure:"body_language" validate:"gt=0,lte=1"`
	VocalDelivery    float64 `json:"vocal_delivery" yaml:"vocal_delivery" mapstructure:"vocal_delivery" validate:"gt=0,lte=1"`
	ContentQuality   float64 `json:"content_quality" yaml:"content_quality" mapstructure:"content_quality" validate:"gt=0,lte=1"`
	FacialExpression float64 `json:"facial_expression" yaml:"facial_expression" mapstructure:"facial_expression" validate:"gt=0,lte=1"`
	TechnicalAspects float64 `json:"technical_aspects" yaml:"technical_aspects" mapstructure:"technical_aspects" validate:"gt=0,lte=1"`
}

// DefaultWeights returns the canonical weight table.
func DefaultWeights() Weights {
	return Weights{
		BodyLanguage:     0.25,
		VocalDelivery:    0.20,
		ContentQuality:   0.30,
		FacialExpression: 0.15,
		TechnicalAspects: 0.10,
	}
}

// For returns the weight of c and whether c is a known category.
func (w Weights) For(c Category) (float64, bool) {
	switch c {
	case BodyLanguage:
		return w.BodyLanguage, true
	case VocalDelivery:
		return w.VocalDelivery, true
	case ContentQuality:
		return w.ContentQuality, true
	case FacialExpression:
		return w.FacialExpression, true
	case TechnicalQuality:
		return w.TechnicalAspects, true
	}
	return 0, false
}

func (w Weights) sum() float64 {
	return w.BodyLanguage + w.VocalDelivery + w.ContentQuality + w.FacialExpression + w.TechnicalAspects
}

// Scoring is the immutable scoring model shared by the aggregator, the
// suggestion generator and the summary compositor.
type Scoring struct {
	Weights Weights `json:"weights" yaml:"weights" mapstructure:"weights" validate:"required"`

	// StrengthScore is the inclusive lower bound for a strength.
	StrengthScore float64 `json:"strength_score" yaml:"strength_score" mapstructure:"strength_score" validate:"gte=0,lte=100"`
	// WeaknessScore is the exclusive upper bound for a weakness and for a
	// targeted suggestion.
	WeaknessScore float64 `json:"weakness_score" yaml:"weakness_score" mapstructure:"weakness_score" validate:"gte=0,lte=100"`

	FocusAreas     int `json:"focus_areas" yaml:"focus_areas" mapstructure:"focus_areas" validate:"min=1,max=5"`
	MaxSuggestions int `json:"max_suggestions" yaml:"max_suggestions" mapstructure:"max_suggestions" validate:"min=1,max=5"`
	MaxHighlights  int `json:"max_highlights" yaml:"max_highlights" mapstructure:"max_highlights" validate:"min=1,max=3"`
}

func DefaultScoring() Scoring {
	return Scoring{
		Weights:        DefaultWeights(),
		StrengthScore:  80,
		WeaknessScore:  70,
		FocusAreas:     3,
		MaxSuggestions: 5,
		MaxHighlights:  3,
	}
}

// Validate checks the table. Weights must each be positive and sum to 1.
func (s Scoring) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScoring, err)
	}
	if sum := s.Weights.sum(); math.Abs(sum-1) > 1e-3 {
		return fmt.Errorf("%w: weights sum to %.3f, want 1", ErrInvalidScoring, sum)
	}
	if s.WeaknessScore > s.StrengthScore {
		return fmt.Errorf("%w: weakness score %.1f above strength score %.1f",
			ErrInvalidScoring, s.WeaknessScore, s.StrengthScore)
	}
	return nil
}
