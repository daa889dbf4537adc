package ollama

import "context"

// IOllama defines the interface for a locally hosted Ollama server.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate sends a single-shot completion request
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Heartbeat reports whether the server is reachable
	Heartbeat(ctx context.Context) error

	// Model returns the model being used
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
