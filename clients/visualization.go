package clients

import "context"

type RadarReq struct {
	Categories  []string  `json:"categories"`
	Values      []float64 `json:"values"`
	StudentName string    `json:"student_name"`
	OutputDir   string    `json:"output_dir,omitempty"`
}

type RadarResp struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

// GenerateRadar asks the visualization service for a category radar chart.
func (h *HTTP) GenerateRadar(ctx context.Context, url string, req RadarReq) (*RadarResp, error) {
	var out RadarResp
	if err := h.postJSON(ctx, "viz radar", endpoint(url, "/generate-radar"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
