package clients

import (
	"context"
	"strconv"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

// Expression classifies facial expressions over a recording via
// {url}/expression. The answer carries per-frame emotion_scores and the
// averaged average_scores.
func (h *HTTP) Expression(ctx context.Context, url, videoPath string, targetFPS float64) (evaluation.ModalityResult, error) {
	var out evaluation.ModalityResult
	fields := map[string]string{"target_fps": strconv.FormatFloat(targetFPS, 'f', -1, 64)}
	if err := h.postFile(ctx, "expression", endpoint(url, "/expression"), videoPath, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}
