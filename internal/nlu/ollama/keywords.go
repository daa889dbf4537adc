package ollama

import (
	"strings"
	"time"

	"calendar-nlu-service/internal/model"
	"calendar-nlu-service/internal/nlu"
)

// cancelKeywords are verbs that signal an existing event should be dropped.
var cancelKeywords = []string{"cancel", "call off", "delete"}

// keywordSlots is the rule-based matcher used when the local model is
// unreachable or its output cannot be decoded. It scans the lowercased
// utterance for literal keywords and returns a canned slot set per
// category, or the inert fallback when nothing matches. Canned times are
// one day ahead in the extractor's zone.
func (e *Extractor) keywordSlots(utterance string, now time.Time) model.SlotSet {
	lower := strings.ToLower(utterance)

	switch {
	case strings.Contains(lower, "meeting"):
		return e.cannedEvent("Meeting", now, 14, 15)
	case strings.Contains(lower, "lunch"):
		return e.cannedEvent("Lunch Meeting", now, 12, 13)
	}

	for _, kw := range cancelKeywords {
		if strings.Contains(lower, kw) {
			return model.SlotSet{Intent: model.IntentCancelEvent}
		}
	}

	return nlu.Fallback()
}

// cannedEvent builds a one-hour CreateEvent tomorrow between startHour and
// endHour local time.
func (e *Extractor) cannedEvent(title string, now time.Time, startHour, endHour int) model.SlotSet {
	tomorrow := now.AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), startHour, 0, 0, 0, e.location)
	end := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), endHour, 0, 0, 0, e.location)

	return model.SlotSet{
		Intent: model.IntentCreateEvent,
		Title:  title,
		Start:  start.Format(time.RFC3339),
		End:    end.Format(time.RFC3339),
	}
}
