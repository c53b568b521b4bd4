package report

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

func sortedKeys(m map[string]float64) []string {
	return slices.Sorted(maps.Keys(m))
}

// Markdown renders the full report as a Markdown document.
func Markdown(rep *evaluation.Report) string {
	var b strings.Builder
	ov := rep.OverallEvaluation

	b.WriteString("# Presentation Evaluation\n\n")
	fmt.Fprintf(&b, "**Score:** %.1f/%d | **Grade:** %s | **Evaluated:** %d/%d categories\n\n",
		ov.OverallScore, ov.TotalPossible, ov.Grade, ov.EvaluatedCategories, len(rep.CategoryEvaluations))
	fmt.Fprintf(&b, "_Evaluated %s_\n\n", rep.EvaluationTimestamp.Format("2006-01-02 15:04 MST"))

	b.WriteString("## Categories\n\n")
	b.WriteString("| Category | Score | Weight |\n")
	b.WriteString("|----------|------:|-------:|\n")
	for _, ev := range rep.CategoryEvaluations {
		weight, _ := ov.CategoryWeights.For(ev.Category)
		fmt.Fprintf(&b, "| %s | %.1f | %.0f%% |\n", escapeCell(string(ev.Category)), ev.OverallScore, weight*100)
	}
	b.WriteString("\n")

	for _, ev := range rep.CategoryEvaluations {
		fmt.Fprintf(&b, "### %s\n\n", ev.Category)
		for _, name := range sortedKeys(ev.DetailedScores) {
			fmt.Fprintf(&b, "- `%s`: %.1f\n", name, ev.DetailedScores[name])
		}
		for _, fb := range ev.Feedback {
			fmt.Fprintf(&b, "- %s\n", fb)
		}
		b.WriteString("\n")
	}

	mdList(&b, "Strengths", rep.Summary.Strengths)
	mdList(&b, "Areas for Improvement", rep.Summary.AreasForImprovement)
	mdList(&b, "Suggestions", rep.ImprovementSuggestions)
	return b.String()
}

func mdList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Presentation Evaluation</title>
<style>body{font-family:sans-serif;max-width:52rem;margin:2rem auto}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.3rem .6rem}</style>
</head>
<body>
`

// writeHTML renders the Markdown document to a standalone HTML page.
func writeHTML(w io.Writer, rep *evaluation.Report) error {
	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(rep)), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	if _, err := io.WriteString(w, htmlHead); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
