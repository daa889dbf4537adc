package http

import (
	"strings"

	"calendar-nlu-service/internal/event"
	"calendar-nlu-service/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Utterance string `json:"utterance" binding:"required"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Utterance) == "" {
		return errEmptyUtterance
	}
	return nil
}

func (r extractReq) toInput() event.ExtractInput {
	return event.ExtractInput{
		Utterance: r.Utterance,
	}
}

// ---

type scheduleReq struct {
	Utterance  string `json:"utterance" binding:"required"`
	CalendarID string `json:"calendar_id"`
}

func (r scheduleReq) validate() error {
	if strings.TrimSpace(r.Utterance) == "" {
		return errEmptyUtterance
	}
	return nil
}

func (r scheduleReq) toInput() event.ScheduleInput {
	return event.ScheduleInput{
		Utterance:  r.Utterance,
		CalendarID: r.CalendarID,
	}
}

// --- Response DTOs ---

type extractResp struct {
	Slots   model.SlotSet   `json:"slots"`
	Event   model.EventBody `json:"event"`
	Missing []string        `json:"missing,omitempty"`
}

func (h *handler) newExtractResp(o event.ExtractOutput) extractResp {
	return extractResp{
		Slots:   o.Slots,
		Event:   o.Event,
		Missing: o.Missing,
	}
}

type createdEventResp struct {
	ID       string `json:"id"`
	HTMLLink string `json:"html_link,omitempty"`
}

type scheduleResp struct {
	Slots   model.SlotSet     `json:"slots"`
	Event   model.EventBody   `json:"event"`
	Missing []string          `json:"missing,omitempty"`
	Created *createdEventResp `json:"created,omitempty"`
}

func (h *handler) newScheduleResp(o event.ScheduleOutput) scheduleResp {
	resp := scheduleResp{
		Slots:   o.Slots,
		Event:   o.Event,
		Missing: o.Missing,
	}
	if o.Created != nil {
		resp.Created = &createdEventResp{
			ID:       o.Created.ID,
			HTMLLink: o.Created.HTMLLink,
		}
	}
	return resp
}
