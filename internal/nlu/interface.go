// Package nlu defines the extraction contract: turning a natural-language
// utterance into a structured slot set. Two strategies implement it, a
// hosted schema-constrained one and a local free-text one, selected by
// configuration at wiring time.
package nlu

import (
	"context"

	"calendar-nlu-service/internal/model"
)

// Extractor turns an utterance into a slot set. Extraction never fails from
// the caller's point of view: every transport, decode, or semantic problem
// resolves to a well-formed, possibly minimal, slot set.
type Extractor interface {
	Extract(ctx context.Context, utterance string) model.SlotSet

	// Name returns the strategy name (e.g. "openai", "ollama")
	Name() string
}
