package usecase

import (
	"context"
	"strings"

	"calendar-nlu-service/internal/event"
	"calendar-nlu-service/internal/mapper"
)

// Extract runs the two-stage pipeline: NLU extraction, then deterministic
// mapping into the provider event body.
func (uc *implUseCase) Extract(ctx context.Context, input event.ExtractInput) (event.ExtractOutput, error) {
	if strings.TrimSpace(input.Utterance) == "" {
		return event.ExtractOutput{}, event.ErrEmptyUtterance
	}

	slots := uc.extractor.Extract(ctx, input.Utterance)
	uc.l.Infof(ctx, "Extract: strategy=%s intent=%s", uc.extractor.Name(), slots.Intent)

	body := mapper.ToEventBody(slots, uc.timezone)
	missing := mapper.MissingFields(slots)
	if len(missing) > 0 {
		uc.l.Infof(ctx, "Extract: missing critical fields: %s", strings.Join(missing, ", "))
	}

	return event.ExtractOutput{
		Slots:   slots,
		Event:   body,
		Missing: missing,
	}, nil
}
