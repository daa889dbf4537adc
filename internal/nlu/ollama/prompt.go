package ollama

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SystemPromptTemplate instructs the local model to answer with slot-set
// JSON only. Today's date is embedded textually because small local models
// follow it more reliably than a structured reference field.
const SystemPromptTemplate = `You are a calendar NLU engine. Today's date is %s (%s).
Extract the calendar intent and slots from the user's utterance and respond with a single JSON object only. No markdown, no code fences, no explanation.

Fields:
- intent: one of "CreateEvent", "MoveEvent", "CancelEvent", "AddInvitees", "QueryFreeTime" (required)
- title: short event title
- start, end: absolute RFC3339 timestamps WITH timezone offset, e.g. "2025-09-03T16:00:00-04:00"
- duration_minutes: integer, when only a duration is given
- timezone: IANA zone name
- location: free text
- attendees: array of emails or names exactly as the user wrote them; never invent identities
- recurrence: a single RFC5545 RRULE string
- reminders: array of {"method": "popup"|"email", "minutes": integer}

Resolve relative dates against today's date above. Omit any field you are not confident about.`

// userPromptTemplate repeats today's date next to the utterance.
const userPromptTemplate = "Today's date is %s.\nUtterance: %s"

// systemPrompt renders the system instruction for the given reference time.
func systemPrompt(now time.Time) string {
	return fmt.Sprintf(SystemPromptTemplate, now.Format("2006-01-02"), now.Weekday())
}

// userPrompt renders the user message for the given reference time.
func userPrompt(now time.Time, utterance string) string {
	return fmt.Sprintf(userPromptTemplate, now.Format("2006-01-02"), utterance)
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse strips markdown code fences and leading/trailing
// prose that local models often wrap around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
