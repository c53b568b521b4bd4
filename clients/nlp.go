package clients

import (
	"context"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

type TextReq struct {
	Text string `json:"text"`
}

// Content rates a transcript via {url}/analyze. The answer carries
// presentationAnalysis.contentQualityMetrics and overallScore on a 1-10 scale.
func (h *HTTP) Content(ctx context.Context, url, transcript string) (evaluation.ModalityResult, error) {
	var out evaluation.ModalityResult
	if err := h.postJSON(ctx, "content", endpoint(url, "/analyze"), TextReq{Text: transcript}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Disfluency tags filler words and repetitions via {url}/disfluency.
func (h *HTTP) Disfluency(ctx context.Context, url, transcript string) (evaluation.ModalityResult, error) {
	var out evaluation.ModalityResult
	if err := h.postJSON(ctx, "disfluency", endpoint(url, "/disfluency"), TextReq{Text: transcript}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
