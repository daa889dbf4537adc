package event

import "context"

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// Extract runs the NLU pipeline: utterance -> slot set -> event body,
	// plus the advisory missing-field check.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// Schedule extracts and maps like Extract, then inserts the event body
	// into Google Calendar when a client is configured and the slots
	// describe a creatable event.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
