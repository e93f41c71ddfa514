// Package classifier provides a Hugging Face Inference API client for
// emotion text classification.
package classifier

import (
	"errors"
	"os"
)

// DefaultModel is the emotion classification model used unless HF_MODEL
// overrides it.
const DefaultModel = "j-hartmann/emotion-english-distilroberta-base"

// ErrMissingAPIToken is returned when HF_API_TOKEN is not set.
var ErrMissingAPIToken = errors.New("missing HF_API_TOKEN environment variable")

// Config holds Hugging Face Inference API configuration.
type Config struct {
	APIToken string
	Model    string
}

// LoadConfig reads classifier configuration from environment variables.
// Returns ErrMissingAPIToken if HF_API_TOKEN is not set.
func LoadConfig() (*Config, error) {
	token := os.Getenv("HF_API_TOKEN")
	if token == "" {
		return nil, ErrMissingAPIToken
	}

	model := os.Getenv("HF_MODEL")
	if model == "" {
		model = DefaultModel
	}

	return &Config{APIToken: token, Model: model}, nil
}
