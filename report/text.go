package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

const (
	colScore = 7
	rule     = 64
)

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func writeText(w io.Writer, rep *evaluation.Report) error {
	bw := bufio.NewWriter(w)
	ov := rep.OverallEvaluation

	fmt.Fprintf(bw, "Presentation Evaluation  %s\n", rep.EvaluationTimestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintln(bw, strings.Repeat("=", rule))
	fmt.Fprintf(bw, "Overall: %.1f/%d  (%s)  %d/%d categories evaluated\n\n",
		ov.OverallScore, ov.TotalPossible, ov.Grade, ov.EvaluatedCategories, len(rep.CategoryEvaluations))

	nameWidth := 0
	for _, ev := range rep.CategoryEvaluations {
		nameWidth = max(nameWidth, runewidth.StringWidth(string(ev.Category)))
	}
	fmt.Fprintf(bw, "%s  %s  %s\n", padRight("Category", nameWidth), padRight("Score", colScore), "Weight")
	fmt.Fprintln(bw, strings.Repeat("-", rule))
	for _, ev := range rep.CategoryEvaluations {
		weight, _ := ov.CategoryWeights.For(ev.Category)
		fmt.Fprintf(bw, "%s  %s  %.0f%%\n",
			padRight(string(ev.Category), nameWidth),
			padRight(fmt.Sprintf("%.1f", ev.OverallScore), colScore),
			weight*100)
	}

	for _, ev := range rep.CategoryEvaluations {
		fmt.Fprintf(bw, "\n%s\n", ev.Category)
		for _, name := range sortedKeys(ev.DetailedScores) {
			fmt.Fprintf(bw, "  %s %.1f\n", padRight(name, 22), ev.DetailedScores[name])
		}
		for _, fb := range ev.Feedback {
			fmt.Fprintf(bw, "  %s\n", fb)
		}
	}

	writeList(bw, "Strengths", rep.Summary.Strengths)
	writeList(bw, "Areas for improvement", rep.Summary.AreasForImprovement)
	writeList(bw, "Suggestions", rep.ImprovementSuggestions)
	return bw.Flush()
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}
