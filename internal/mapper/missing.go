package mapper

import "calendar-nlu-service/internal/model"

// MissingFields reports which critical fields a CreateEvent slot set lacks.
// The list is advisory input for a follow-up clarification step; it never
// blocks mapping. Non-create intents have no required fields.
func MissingFields(slots model.SlotSet) []string {
	if slots.Intent != model.IntentCreateEvent {
		return nil
	}

	var missing []string
	if slots.Title == "" {
		missing = append(missing, "title")
	}
	if slots.Start == "" && slots.DurationMinutes == 0 {
		missing = append(missing, "start")
	}
	if slots.End == "" && slots.DurationMinutes == 0 {
		missing = append(missing, "end")
	}
	return missing
}
