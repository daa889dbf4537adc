package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-nlu-service/internal/event"
	"calendar-nlu-service/pkg/response"
)

// Extract godoc
// @Summary     Extract calendar event slots from an utterance
// @Description Runs the NLU pipeline on the utterance and returns the extracted slots, the mapped calendar event body and any fields still missing for a complete event.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Utterance to analyze"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Schedule godoc
// @Summary     Extract an event and insert it into Google Calendar
// @Description Runs the NLU pipeline on the utterance and, when the result is a complete create request, inserts the event into the configured calendar. Partial pipeline results are returned even when the insert fails.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Utterance to schedule"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		if errors.Is(err, event.ErrCalendarInsert) {
			response.Error(c, h.mapError(err), map[string]interface{}{
				"slots":   output.Slots,
				"event":   output.Event,
				"missing": output.Missing,
			})
			return
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
