// Package config holds the YAML configuration envelope for the server and
// detector.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glossa-tools/glossa/detect"
)

type Envelope struct {
	Server   Server   `yaml:"server"`
	Detector Detector `yaml:"detector"`
}

type Server struct {
	Address string   `yaml:"address"`
	Tokens  []string `yaml:"tokens"`
}

type Detector struct {
	// DetectLanguageToken enables the detectlanguage.com backend.
	DetectLanguageToken string `yaml:"detectlanguage_token"`
	// Timeout is a Go duration string bounding each adapter call, e.g. "5s".
	Timeout string             `yaml:"timeout"`
	Weights map[string]float64 `yaml:"weights"`
	LLM     *LLM               `yaml:"llm"`
}

type LLM struct {
	Backend  string `yaml:"backend"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
}

// LoadFromFile parses the YAML envelope at path.
func LoadFromFile(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	envelope := &Envelope{}
	if err := yaml.Unmarshal(data, envelope); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return envelope, nil
}

// DetectorConfig converts the envelope's detector section into the detect
// package's configuration.
func (e *Envelope) DetectorConfig() (detect.Config, error) {
	config := detect.Config{
		DetectLanguageToken: e.Detector.DetectLanguageToken,
		Weights:             e.Detector.Weights,
	}
	if e.Detector.Timeout != "" {
		timeout, err := time.ParseDuration(e.Detector.Timeout)
		if err != nil {
			return config, fmt.Errorf("parse detector timeout: %w", err)
		}
		config.Timeout = timeout
	}
	if e.Detector.LLM != nil {
		config.LLM = &detect.LLMConfig{
			Backend:  e.Detector.LLM.Backend,
			Model:    e.Detector.LLM.Model,
			Endpoint: e.Detector.LLM.Endpoint,
			Token:    e.Detector.LLM.Token,
		}
	}
	return config, nil
}
