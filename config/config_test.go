package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Pipeline.LogLevel)
	assert.Equal(t, "text", cfg.Pipeline.LogFormat)
	assert.Equal(t, 4, cfg.Pipeline.Concurrency)
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.Timeout())
	assert.Equal(t, evaluation.DefaultScoring(), cfg.Evaluation)
	assert.Equal(t, "outputs", cfg.Paths.Outputs)
	assert.Empty(t, cfg.Services.ASR.URL)
}

func TestLoadCandidateByEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_ENV", "staging")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config", "staging"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "staging", "config.yaml"),
		[]byte("pipeline:\n  name: staging-eval\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "staging-eval", cfg.Pipeline.Name)
}

func TestLoadBundledDevConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("dev", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8103", cfg.Services.ASR.URL)
	assert.Equal(t, evaluation.DefaultWeights(), cfg.Evaluation.Weights)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  log_level: warn
  concurrency: 2
services:
  asr:
    url: http://asr.internal:9000
evaluation:
  weights:
    body_language: 0.20
    content_quality: 0.35
paths:
  outputs: /var/lib/peval
`)
	t.Setenv("PEVAL_PIPELINE_LOG_LEVEL", "debug")
	t.Setenv("PEVAL_PIPELINE_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Pipeline.LogLevel)
	assert.Equal(t, "json", cfg.Pipeline.LogFormat)
	assert.Equal(t, 2, cfg.Pipeline.Concurrency)
	assert.Equal(t, "http://asr.internal:9000", cfg.Services.ASR.URL)
	assert.Equal(t, 0.20, cfg.Evaluation.Weights.BodyLanguage)
	assert.Equal(t, 0.35, cfg.Evaluation.Weights.ContentQuality)
	assert.Equal(t, 0.20, cfg.Evaluation.Weights.VocalDelivery)
	assert.Equal(t, "/var/lib/peval", cfg.Paths.Outputs)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("weights do not sum to one", func(t *testing.T) {
		path := writeConfig(t, "evaluation:\n  weights:\n    body_language: 0.9\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, evaluation.ErrInvalidScoring)
	})

	t.Run("unknown log format", func(t *testing.T) {
		path := writeConfig(t, "pipeline:\n  log_format: xml\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogFormat")
	})

	t.Run("bad service url", func(t *testing.T) {
		path := writeConfig(t, "services:\n  content:\n    url: not a url\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "URL")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "pipeline: [unterminated\n")
		_, err := Load(path)
		require.Error(t, err)
	})
}
