package ollama

import "time"

// PlaceholderYear is the canned year the local model keeps emitting when it
// fails to resolve a relative date. Any timestamp tagged with it is assumed
// to mean "tomorrow".
//
// This is a best-effort correction, not a date resolver: it only catches
// this one observed failure mode and should not be generalized.
const PlaceholderYear = 2024

// correctPlaceholderDate rewrites the date portion of ts to tomorrow
// relative to now when its year equals PlaceholderYear, preserving the
// extracted time-of-day and the timestamp's own offset. Anything else is
// returned unchanged, including strings that do not parse.
func correctPlaceholderDate(ts string, now time.Time) string {
	if ts == "" {
		return ts
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil || t.Year() != PlaceholderYear {
		return ts
	}

	tomorrow := now.AddDate(0, 0, 1)
	fixed := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return fixed.Format(time.RFC3339)
}
