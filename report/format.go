// Package report renders an evaluation report for people and for machines.
package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

// View selects which projection of the report a structured format carries.
type View string

const (
	ViewFull      View = "full"
	ViewSummary   View = "summary"
	ViewScoreCard View = "scorecard"
	ViewFeedback  View = "feedback"
)

var views = []View{ViewFull, ViewSummary, ViewScoreCard, ViewFeedback}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "md" {
		f = FormatMarkdown
	}
	if !slices.Contains(formats, f) {
		return "", fmt.Errorf("unsupported format %q: must be one of %s", s, join(formats))
	}
	return f, nil
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(views, v) {
		return "", fmt.Errorf("unsupported view %q: must be one of %s", s, join(views))
	}
	return v, nil
}

// structured reports whether f serializes a data view rather than a document.
func (f Format) structured() bool { return f == FormatJSON || f == FormatYAML }

func project(rep *evaluation.Report, v View) any {
	switch v {
	case ViewSummary:
		return rep.PresentationSummary()
	case ViewScoreCard:
		return rep.ScoreCard()
	case ViewFeedback:
		return rep.DetailedFeedback()
	default:
		return rep
	}
}

func join[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
