package evaluation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CategorySet holds the category evaluations of one run in evaluation order.
// It serializes as an object keyed by category name, keeping that order.
type CategorySet []CategoryEvaluation

// Get returns the evaluation for c.
func (s CategorySet) Get(c Category) (CategoryEvaluation, bool) {
	for _, ev := range s {
		if ev.Category == c {
			return ev, true
		}
	}
	return CategoryEvaluation{}, false
}

// Scores maps category name to overall score.
func (s CategorySet) Scores() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, ev := range s {
		out[string(ev.Category)] = ev.OverallScore
	}
	return out
}

func (s CategorySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ev := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, string(ev.Category)); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, ev); err != nil {
			return nil, fmt.Errorf("category %q: %w", ev.Category, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSON appends v without HTML escaping so category names keep their '&'.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

func (s *CategorySet) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("category evaluations: expected object, got %v", tok)
	}
	var out CategorySet
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var ev CategoryEvaluation
		if err := dec.Decode(&ev); err != nil {
			return fmt.Errorf("category %q: %w", key, err)
		}
		if ev.Category == "" {
			ev.Category = Category(key)
		}
		out = append(out, ev)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

func (s CategorySet) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ev := range s {
		var val yaml.Node
		if err := val.Encode(ev); err != nil {
			return nil, fmt.Errorf("category %q: %w", ev.Category, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(ev.Category)}
		node.Content = append(node.Content, key, &val)
	}
	return node, nil
}
