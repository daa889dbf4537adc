package ollama

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config holds Ollama client configuration
type Config struct {
	Host       string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if !strings.HasPrefix(c.Host, "http://") && !strings.HasPrefix(c.Host, "https://") {
		return fmt.Errorf("ollama: host must include a scheme, got %q", c.Host)
	}
	c.Host = strings.TrimRight(c.Host, "/")
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	host       string
	model      string
	httpClient *http.Client
}

// GenerateRequest is a single-shot completion request
type GenerateRequest struct {
	System      string
	Prompt      string
	Temperature float64
}

// GenerateResponse is the transport envelope returned by /api/generate.
// Response holds the model's raw text output.
type GenerateResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// Wire types for the Ollama generate API
type generateRequest struct {
	Model   string          `json:"model"`
	System  string          `json:"system,omitempty"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}
