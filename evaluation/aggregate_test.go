package evaluation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catEval(c Category, score float64) CategoryEvaluation {
	return CategoryEvaluation{
		Category:       c,
		OverallScore:   score,
		DetailedScores: map[string]float64{"x": score},
		Feedback:       []string{},
	}
}

func TestAggregateRenormalizes(t *testing.T) {
	s := DefaultScoring()

	t.Run("subset of categories", func(t *testing.T) {
		overall := s.Aggregate(CategorySet{
			catEval(BodyLanguage, 80),
			catEval(ContentQuality, 60),
		})
		want := (80*0.25 + 60*0.30) / (0.25 + 0.30)
		assert.Equal(t, round1(want), overall.OverallScore)
		assert.Equal(t, 69.1, overall.OverallScore)
		assert.Equal(t, GradeFair, overall.Grade)
		assert.Equal(t, 2, overall.EvaluatedCategories)
	})

	t.Run("every subset", func(t *testing.T) {
		scores := []float64{91, 47, 73, 66, 88}
		for mask := 1; mask < 1<<len(categoryOrder); mask++ {
			var set CategorySet
			var num, den float64
			for i, c := range categoryOrder {
				if mask&(1<<i) == 0 {
					continue
				}
				set = append(set, catEval(c, scores[i]))
				w, _ := s.Weights.For(c)
				num += scores[i] * w
				den += w
			}
			assert.Equal(t, round1(num/den), s.Aggregate(set).OverallScore, "mask=%05b", mask)
		}
	})

	t.Run("all five", func(t *testing.T) {
		overall := s.Aggregate(CategorySet{
			catEval(BodyLanguage, 100),
			catEval(VocalDelivery, 100),
			catEval(ContentQuality, 100),
			catEval(FacialExpression, 100),
			catEval(TechnicalQuality, 100),
		})
		assert.Equal(t, 100.0, overall.OverallScore)
		assert.Equal(t, GradeExcellent, overall.Grade)
		assert.Equal(t, totalPossible, overall.TotalPossible)
		assert.Equal(t, DefaultWeights(), overall.CategoryWeights)
	})

	t.Run("empty set", func(t *testing.T) {
		overall := s.Aggregate(nil)
		assert.Equal(t, 50.0, overall.OverallScore)
		assert.Equal(t, GradeNeedsImprovement, overall.Grade)
		assert.Zero(t, overall.EvaluatedCategories)
	})

	t.Run("default categories are weighted but not counted", func(t *testing.T) {
		overall := s.Aggregate(CategorySet{
			catEval(BodyLanguage, 90),
			{Category: VocalDelivery, OverallScore: 50, DetailedScores: map[string]float64{}},
		})
		assert.Equal(t, round1((90*0.25+50*0.20)/0.45), overall.OverallScore)
		assert.Equal(t, 1, overall.EvaluatedCategories)
	})
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{100, GradeExcellent},
		{95, GradeExcellent},
		{90, GradeExcellent},
		{89.9, GradeVeryGood},
		{89.5, GradeVeryGood},
		{80, GradeVeryGood},
		{79.99, GradeGood},
		{70, GradeGood},
		{69.5, GradeFair},
		{60, GradeFair},
		{59.9, GradeNeedsImprovement},
		{0, GradeNeedsImprovement},
		{-3, GradeNeedsImprovement},
		{100.1, GradeNeedsImprovement},
		{500, GradeNeedsImprovement},
		{math.NaN(), GradeNeedsImprovement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.score), "score=%v", tt.score)
	}
}

func TestGradeLabels(t *testing.T) {
	assert.Equal(t, Grade("Excellent"), GradeExcellent)
	assert.Equal(t, Grade("Very Good"), GradeVeryGood)
	assert.Equal(t, Grade("Good"), GradeGood)
	assert.Equal(t, Grade("Fair"), GradeFair)
	assert.Equal(t, Grade("Needs Improvement"), GradeNeedsImprovement)
}

func TestGradeMonotonic(t *testing.T) {
	rank := map[Grade]int{
		GradeNeedsImprovement: 0,
		GradeFair:             1,
		GradeGood:             2,
		GradeVeryGood:         3,
		GradeExcellent:        4,
	}
	prev := rank[GradeFor(0)]
	for i := 1; i <= 10000; i++ {
		score := float64(i) / 100
		r := rank[GradeFor(score)]
		require.GreaterOrEqual(t, r, prev, "grade dropped at %v", score)
		prev = r
	}
	assert.Equal(t, 4, prev)
}

func TestScoringValidate(t *testing.T) {
	require.NoError(t, DefaultScoring().Validate())

	tests := []struct {
		name   string
		mutate func(*Scoring)
	}{
		{"missing weight", func(s *Scoring) { s.Weights.FacialExpression = 0; s.Weights.ContentQuality = 0.45 }},
		{"negative weight", func(s *Scoring) { s.Weights.TechnicalAspects = -0.1; s.Weights.BodyLanguage = 0.45 }},
		{"weights do not sum to one", func(s *Scoring) { s.Weights.BodyLanguage = 0.5 }},
		{"weakness above strength", func(s *Scoring) { s.WeaknessScore = 85 }},
		{"no focus areas", func(s *Scoring) { s.FocusAreas = 0 }},
		{"no suggestions", func(s *Scoring) { s.MaxSuggestions = 0 }},
		{"too many suggestions", func(s *Scoring) { s.MaxSuggestions = 9; s.FocusAreas = 5 }},
		{"too many highlights", func(s *Scoring) { s.MaxHighlights = 4 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScoring()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScoring)

			_, err = NewEvaluator(s)
			assert.ErrorIs(t, err, ErrInvalidScoring)
		})
	}
}
