package orchestrator

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	json5 "github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

// ErrInvalidInput is returned for raw-results files that cannot be evaluated.
var ErrInvalidInput = errors.New("invalid raw results")

// transcriptKey holds the transcript next to the modalities in a saved run.
const transcriptKey = "transcript"

// derivedKeys are written by earlier evaluations and are not modalities.
var derivedKeys = []string{"evaluation", "presentation_summary"}

//go:embed raw_results.schema.json
var rawResultsSchemaJSON string

var rawResultsSchema = mustCompileSchema(rawResultsSchemaJSON, "raw_results.schema.json")

func mustCompileSchema(raw, name string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse embedded %s: %v", name, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("add %s: %v", name, err))
	}
	sch, err := c.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile %s: %v", name, err))
	}
	return sch
}

// LoadRawResults reads a saved raw-results file. The file is JSON5 so hand
// edits with comments or trailing commas still load. Bare NaN and Infinity,
// as Python's json module writes them, load as null.
func LoadRawResults(path string) (evaluation.RawResults, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read raw results: %w", err)
	}
	return ParseRawResults(data)
}

// ParseRawResults decodes and checks the shape of a raw-results document and
// splits off its transcript.
func ParseRawResults(data []byte) (evaluation.RawResults, string, error) {
	var doc any
	if err := json5.Unmarshal(nonFiniteToNull(data), &doc); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := rawResultsSchema.Validate(doc); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	top := doc.(map[string]any)
	transcript, _ := top[transcriptKey].(string)

	raw := make(evaluation.RawResults, len(top))
	for key, v := range top {
		if key == transcriptKey || slices.Contains(derivedKeys, key) {
			continue
		}
		m, _ := v.(map[string]any)
		if m == nil {
			continue
		}
		raw[key] = evaluation.ModalityResult(m)
	}
	return raw, transcript, nil
}

// nonFiniteToNull rewrites NaN, Infinity, +Infinity and -Infinity literals
// outside strings and comments to null. Unquoted keys are left alone.
func nonFiniteToNull(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c == '"' || c == '\'':
			j := i + 1
			for j < len(data) && data[j] != c {
				if data[j] == '\\' {
					j++
				}
				j++
			}
			j = min(j+1, len(data))
			out.Write(data[i:j])
			i = j
			continue
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			j := bytes.IndexByte(data[i:], '\n')
			if j < 0 {
				j = len(data) - i
			}
			out.Write(data[i : i+j])
			i += j
			continue
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			j := bytes.Index(data[i+2:], []byte("*/"))
			end := len(data)
			if j >= 0 {
				end = i + 2 + j + 2
			}
			out.Write(data[i:end])
			i = end
			continue
		}
		if n := nonFiniteLen(data, i); n > 0 {
			out.WriteString("null")
			i += n
			continue
		}
		out.WriteByte(c)
		i++
	}
	return out.Bytes()
}

// nonFiniteLen is the length of a non-finite literal used as a value at i.
func nonFiniteLen(data []byte, i int) int {
	if i > 0 && isIdentByte(data[i-1]) {
		return 0
	}
	j := i
	if data[j] == '-' || data[j] == '+' {
		j++
	}
	for _, lit := range []string{"NaN", "Infinity"} {
		end := j + len(lit)
		if !bytes.HasPrefix(data[j:], []byte(lit)) || (end < len(data) && isIdentByte(data[end])) {
			continue
		}
		rest := bytes.TrimLeft(data[end:], " \t\r\n")
		if len(rest) > 0 && rest[0] == ':' {
			return 0
		}
		return end - i
	}
	return 0
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
