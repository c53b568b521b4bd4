package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTP(t *testing.T) *HTTP {
	t.Helper()
	log, _ := test.NewNullLogger()
	return NewHTTP(5*time.Second, log)
}

func tempMedia(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.mp4")
	require.NoError(t, os.WriteFile(path, []byte("not really a video"), 0o644))
	return path
}

func TestMotionUploadsRecording(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/motion/head_motion", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "5", r.FormValue("target_fps"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "talk.mp4", hdr.Filename)
		assert.Equal(t, "not really a video", string(body))

		_, _ = w.Write([]byte(`{"stability_score": 82.5, "detection_rate": 0.93, "frames_analyzed": 300}`))
	}))
	defer srv.Close()

	out, err := newTestHTTP(t).Motion(context.Background(), srv.URL+"/", "head_motion", tempMedia(t), 5)
	require.NoError(t, err)
	assert.Equal(t, 82.5, out["stability_score"])
	assert.Equal(t, 0.93, out["detection_rate"])
}

func TestExpression(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expression", r.URL.Path)
		_, _ = w.Write([]byte(`{"average_scores": {"Happy": 0.4, "Neutral": 0.5}}`))
	}))
	defer srv.Close()

	out, err := newTestHTTP(t).Expression(context.Background(), srv.URL, tempMedia(t), 2.5)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Happy": 0.4, "Neutral": 0.5}, out["average_scores"])
}

func TestTextAnalyzers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req TextReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "um so today", req.Text)

		switch r.URL.Path {
		case "/analyze":
			_, _ = w.Write([]byte(`{"presentationAnalysis": {"overallScore": 7.5}}`))
		case "/disfluency":
			_, _ = w.Write([]byte(`{"total_disfluencies": 1}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	h := newTestHTTP(t)
	content, err := h.Content(context.Background(), srv.URL, "um so today")
	require.NoError(t, err)
	assert.Contains(t, content, "presentationAnalysis")

	dis, err := h.Disfluency(context.Background(), srv.URL, "um so today")
	require.NoError(t, err)
	assert.Equal(t, 1.0, dis["total_disfluencies"])
}

func TestASRTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcribe", r.URL.Path)
		_, _ = w.Write([]byte(`{"segments": [{"start": 0, "end": 1.5, "text": " Good morning. "}, {"start": 1.5, "end": 3, "text": "Today we talk about bees."}], "language": "en"}`))
	}))
	defer srv.Close()

	resp, err := newTestHTTP(t).ASR(context.Background(), srv.URL, tempMedia(t))
	require.NoError(t, err)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "Good morning. Today we talk about bees.", resp.Transcript())

	resp.Text = "  explicit text "
	assert.Equal(t, "explicit text", resp.Transcript())
}

func TestGenerateRadar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate-radar", r.URL.Path)
		var req RadarReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Values, 2)
		_, _ = w.Write([]byte(`{"status": "ok", "path": "/tmp/radar.png"}`))
	}))
	defer srv.Close()

	resp, err := newTestHTTP(t).GenerateRadar(context.Background(), srv.URL, RadarReq{
		Categories: []string{"a", "b"},
		Values:     []float64{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/radar.png", resp.Path)
}

func TestServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/analyze":
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		case "/disfluency":
			_, _ = w.Write([]byte(`{not json`))
		}
	}))
	defer srv.Close()
	h := newTestHTTP(t)

	_, err := h.Content(context.Background(), srv.URL, "hello")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, "model not loaded", se.Body)
	assert.Contains(t, err.Error(), "content 503")

	_, err = h.Disfluency(context.Background(), srv.URL, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disfluency decode")

	_, err = h.Motion(context.Background(), srv.URL, "body_tilt", filepath.Join(t.TempDir(), "missing.mp4"), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.Content(ctx, srv.URL, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
