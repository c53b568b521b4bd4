package orchestrator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

// Files written for every run under <outputs>/<analysis_id>/.
const (
	RawResultsFile = "raw_results.json"
	EvaluationFile = "evaluation.json"
	SummaryFile    = "presentation_summary.json"
	RecordFile     = "analysis.json"
)

func mkRunDir(outputsRoot, analysisID string) (string, error) {
	dir := filepath.Join(outputsRoot, analysisID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// rawDocument merges the transcript back next to the modalities so the file
// loads again with LoadRawResults.
func rawDocument(raw evaluation.RawResults, transcript string) map[string]any {
	doc := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		doc[k] = v
	}
	if transcript != "" {
		doc[transcriptKey] = transcript
	}
	return doc
}

// persist writes the run to <outputsRoot>/<analysis_id>/ and returns the
// directory. The record is written last so it reflects the final status.
func persist(outputsRoot string, rec *AnalysisRecord, raw evaluation.RawResults, transcript string, rep *evaluation.Report) (string, error) {
	dir, err := mkRunDir(outputsRoot, rec.ID())
	if err != nil {
		return "", fmt.Errorf("persist: %w", err)
	}

	files := []struct {
		name string
		v    any
	}{
		{RawResultsFile, rawDocument(raw, transcript)},
		{EvaluationFile, rep},
		{SummaryFile, rep.PresentationSummary()},
	}
	for _, f := range files {
		if err := writeJSON(filepath.Join(dir, f.name), f.v); err != nil {
			return "", fmt.Errorf("persist %s: %w", f.name, err)
		}
	}
	return dir, nil
}

func writeRecord(dir string, rec *AnalysisRecord) error {
	if err := writeJSON(filepath.Join(dir, RecordFile), rec.Snapshot()); err != nil {
		return fmt.Errorf("persist %s: %w", RecordFile, err)
	}
	return nil
}
