package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

// Render writes rep to w. Views other than full apply to json and yaml only.
func Render(w io.Writer, rep *evaluation.Report, f Format, v View) error {
	if v != ViewFull && !f.structured() {
		return fmt.Errorf("view %q is only available for json and yaml", v)
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(project(rep, v))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(project(rep, v)); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return writeText(w, rep)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(rep))
		return err
	case FormatHTML:
		return writeHTML(w, rep)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
