package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9090"
  tokens:
    - secret-token
detector:
  detectlanguage_token: dl-token
  timeout: 5s
  weights:
    ngram: 0.5
  llm:
    backend: ollama
    model: llama3
    endpoint: http://localhost:11434
`)

	envelope, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", envelope.Server.Address)
	assert.Equal(t, []string{"secret-token"}, envelope.Server.Tokens)
	assert.Equal(t, "dl-token", envelope.Detector.DetectLanguageToken)

	detectorConfig, err := envelope.DetectorConfig()
	require.NoError(t, err)
	assert.Equal(t, "dl-token", detectorConfig.DetectLanguageToken)
	assert.Equal(t, 5*time.Second, detectorConfig.Timeout)
	assert.Equal(t, 0.5, detectorConfig.Weights["ngram"])
	require.NotNil(t, detectorConfig.LLM)
	assert.Equal(t, "ollama", detectorConfig.LLM.Backend)
	assert.Equal(t, "llama3", detectorConfig.LLM.Model)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDetectorConfigDefaults(t *testing.T) {
	envelope := &Envelope{}
	detectorConfig, err := envelope.DetectorConfig()
	require.NoError(t, err)
	assert.Zero(t, detectorConfig.Timeout)
	assert.Empty(t, detectorConfig.DetectLanguageToken)
	assert.Nil(t, detectorConfig.LLM)
}

func TestDetectorConfigBadTimeout(t *testing.T) {
	envelope := &Envelope{Detector: Detector{Timeout: "soon"}}
	_, err := envelope.DetectorConfig()
	assert.Error(t, err)
}
