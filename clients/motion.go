package clients

import (
	"context"
	"strconv"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

// Motion runs one motion analyzer (body_rotation, head_motion, ...) on a
// recording via {url}/motion/{analyzer}.
func (h *HTTP) Motion(ctx context.Context, url, analyzer, videoPath string, targetFPS float64) (evaluation.ModalityResult, error) {
	var out evaluation.ModalityResult
	fields := map[string]string{"target_fps": strconv.FormatFloat(targetFPS, 'f', -1, 64)}
	if err := h.postFile(ctx, "motion/"+analyzer, endpoint(url, "/motion/"+analyzer), videoPath, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}
