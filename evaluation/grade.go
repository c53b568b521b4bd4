package evaluation

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Grade is the label mapped from an overall score.
type Grade string

func (g Grade) String() string { return string(g) }

func gradeLabel(key string) Grade {
	return Grade(cases.Title(language.English).String(strings.ReplaceAll(key, "_", " ")))
}

var (
	GradeExcellent        = gradeLabel("excellent")
	GradeVeryGood         = gradeLabel("very_good")
	GradeGood             = gradeLabel("good")
	GradeFair             = gradeLabel("fair")
	GradeNeedsImprovement = gradeLabel("needs_improvement")
)

// gradeBands are checked in order. Each band is [min, max) except the top
// one, which includes 100.
var gradeBands = []struct {
	grade    Grade
	min, max float64
}{
	{GradeExcellent, 90, 100},
	{GradeVeryGood, 80, 90},
	{GradeGood, 70, 80},
	{GradeFair, 60, 70},
	{GradeNeedsImprovement, 0, 60},
}

// GradeFor maps score to its grade. Scores outside [0, 100] and NaN fall
// through to GradeNeedsImprovement.
func GradeFor(score float64) Grade {
	if math.IsNaN(score) {
		return GradeNeedsImprovement
	}
	for i, b := range gradeBands {
		if score < b.min {
			continue
		}
		if score < b.max || (i == 0 && score == b.max) {
			return b.grade
		}
	}
	return GradeNeedsImprovement
}
