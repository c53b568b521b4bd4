// Package evaluation turns the raw per-modality analyzer outputs of one
// recorded presentation into a weighted score, a grade, category feedback and
// improvement suggestions.
//
// Every category evaluator tolerates absent modalities, modalities carrying
// an error marker and malformed fields; they fall back to defaults and
// explanatory feedback instead of failing. A report is always produced.
package evaluation

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// categoryEvaluators run in evaluation order; their results keep this order.
var categoryEvaluators = []struct {
	category Category
	evaluate func(inputs) CategoryEvaluation
}{
	{BodyLanguage, evaluateBodyLanguage},
	{VocalDelivery, evaluateVocalDelivery},
	{ContentQuality, evaluateContentQuality},
	{FacialExpression, evaluateFacialExpression},
	{TechnicalQuality, evaluateTechnicalQuality},
}

// Evaluator is safe for concurrent use.
type Evaluator struct {
	scoring Scoring
	log     logrus.FieldLogger
	now     func() time.Time
}

type Option func(*Evaluator)

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock overrides the source of the report timestamp.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) { e.now = now }
}

// NewEvaluator validates scoring and returns an Evaluator that owns it.
func NewEvaluator(scoring Scoring, opts ...Option) (*Evaluator, error) {
	if err := scoring.Validate(); err != nil {
		return nil, err
	}
	e := &Evaluator{
		scoring: scoring,
		log:     logrus.StandardLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Scoring returns the evaluator's scoring model.
func (e *Evaluator) Scoring() Scoring { return e.scoring }

// Categories runs the five category evaluators concurrently over raw.
// raw is only read.
func (e *Evaluator) Categories(raw RawResults, transcript string) CategorySet {
	in := inputs{raw: raw, transcript: transcript, log: e.log}
	set := make(CategorySet, len(categoryEvaluators))

	var g errgroup.Group
	for i, ce := range categoryEvaluators {
		g.Go(func() error {
			set[i] = ce.evaluate(in)
			return nil
		})
	}
	_ = g.Wait()
	return set
}

// Evaluate produces the full report for one presentation.
func (e *Evaluator) Evaluate(raw RawResults, transcript string) *Report {
	timestamp := e.now()

	set := e.Categories(raw, transcript)
	overall := e.scoring.Aggregate(set)
	suggestions := e.scoring.Suggest(set, overall.OverallScore)

	e.log.WithFields(logrus.Fields{
		"overall_score": overall.OverallScore,
		"grade":         overall.Grade,
		"evaluated":     fmt.Sprintf("%d/%d", overall.EvaluatedCategories, len(set)),
	}).Debug("presentation evaluated")

	return &Report{
		EvaluationTimestamp:    timestamp,
		OverallEvaluation:      overall,
		CategoryEvaluations:    set,
		ImprovementSuggestions: suggestions,
		Summary:                e.scoring.Summarize(overall, set),
	}
}
