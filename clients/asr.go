package clients

import (
	"context"
	"strings"
)

type TransSeg struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type ASRResp struct {
	Text     string     `json:"text"`
	Segments []TransSeg `json:"segments"`
	Language string     `json:"language"`
}

// Transcript is the full text, joined from the segments when the service
// did not send it.
func (r *ASRResp) Transcript() string {
	if t := strings.TrimSpace(r.Text); t != "" {
		return t
	}
	parts := make([]string, 0, len(r.Segments))
	for _, s := range r.Segments {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// ASR uploads a recording to {url}/transcribe.
func (h *HTTP) ASR(ctx context.Context, url, mediaPath string) (*ASRResp, error) {
	var out ASRResp
	if err := h.postFile(ctx, "asr", endpoint(url, "/transcribe"), mediaPath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
