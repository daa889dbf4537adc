package openai

// ToolName is the function the model is forced to call.
const ToolName = "extract_event"

// ToolDescription is sent alongside the schema.
const ToolDescription = "Return calendar intent and slots as structured JSON."

// SystemInstruction demands absolute, offset-qualified timestamps resolved
// against the supplied reference time, forbids invented attendee identities,
// and permits partial results.
const SystemInstruction = "You extract calendar intents and slots from natural language. " +
	"Resolve relative dates/times to absolute RFC3339 WITH timezone offset " +
	"using the provided reference_time and timezone. " +
	"If only a duration is given (e.g., 'for 45 minutes'), return duration_minutes. " +
	"If info is missing, return what you're confident about. Do not invent emails."

// eventToolParameters is the strict JSON Schema for the extract_event tool.
// It enumerates exactly the recognized slot fields; intent and
// reminders.method are closed enums.
func eventToolParameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"intent": map[string]interface{}{
				"type": "string",
				"enum": []string{"CreateEvent", "MoveEvent", "CancelEvent", "AddInvitees", "QueryFreeTime"},
			},
			"title": map[string]interface{}{"type": "string"},
			"start": map[string]interface{}{
				"type":        "string",
				"description": "RFC3339 e.g. 2025-09-03T16:00:00-04:00",
			},
			"end": map[string]interface{}{
				"type":        "string",
				"description": "RFC3339 e.g. 2025-09-03T16:45:00-04:00",
			},
			"duration_minutes": map[string]interface{}{"type": "integer"},
			"timezone":         map[string]interface{}{"type": "string"},
			"location":         map[string]interface{}{"type": "string"},
			"attendees": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":        "string",
					"description": "email or name as provided",
				},
			},
			"recurrence": map[string]interface{}{
				"type":        "string",
				"description": "RFC5545 RRULE (optional)",
			},
			"reminders": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"method":  map[string]interface{}{"type": "string", "enum": []string{"popup", "email"}},
						"minutes": map[string]interface{}{"type": "integer"},
					},
					"required":             []string{"method", "minutes"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"intent"},
		"additionalProperties": false,
	}
}
