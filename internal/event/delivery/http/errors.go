package http

import (
	"errors"

	"calendar-nlu-service/internal/event"
)

var errEmptyUtterance = errors.New("utterance must not be empty")

// mapError translates usecase errors into messages safe to show callers.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEmptyUtterance):
		return errEmptyUtterance
	case errors.Is(err, event.ErrCalendarInsert):
		return errors.New("calendar insert failed")
	default:
		return errors.New("something went wrong")
	}
}
