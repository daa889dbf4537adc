package http

import (
	"calendar-nlu-service/internal/event"
	pkgLog "calendar-nlu-service/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc event.UseCase
}

// New creates the HTTP handler for the event domain.
func New(l pkgLog.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
