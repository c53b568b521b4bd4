// Package clients talks to the analyzer services over HTTP. Every analyzer
// answers with a JSON object that is passed through as a modality result.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// maxErrBody bounds how much of a failed response ends up in the error.
const maxErrBody = 512

type HTTP struct {
	c   *http.Client
	log logrus.FieldLogger
}

func NewHTTP(timeout time.Duration, log logrus.FieldLogger) *HTTP {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HTTP{c: &http.Client{Timeout: timeout}, log: log}
}

// StatusError is returned when a service answers with a non-200 status.
type StatusError struct {
	Service string
	Status  string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Service, e.Status, e.Body)
}

func endpoint(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

// do sends req and decodes a 200 JSON answer into out.
func (h *HTTP) do(req *http.Request, service string, out any) error {
	start := time.Now()
	resp, err := h.c.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", service, err)
	}
	defer resp.Body.Close()

	h.log.WithFields(logrus.Fields{
		"service": service,
		"status":  resp.StatusCode,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("analyzer responded")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return &StatusError{Service: service, Status: resp.Status, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s decode: %w", service, err)
	}
	return nil
}

func (h *HTTP) postJSON(ctx context.Context, service, url string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s encode: %w", service, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return h.do(req, service, out)
}

// postFile uploads path as the multipart "file" field along with fields.
func (h *HTTP) postFile(ctx context.Context, service, url, path string, fields map[string]string, out any) error {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return err
	}
	fd, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", service, err)
	}
	defer fd.Close()

	if _, err = io.Copy(fw, fd); err != nil {
		return err
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if err = w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &b)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return h.do(req, service, out)
}
