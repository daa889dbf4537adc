package ollama

import "time"

const (
	// DefaultModel is the default local model
	DefaultModel = "llama3.1"

	// DefaultHost is the default Ollama server address
	DefaultHost = "http://localhost:11434"

	// DefaultTimeout bounds every generate call; a local model that takes
	// longer than this is treated as unavailable.
	DefaultTimeout = 20 * time.Second
)
