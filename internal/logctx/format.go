package logctx

import "strings"

// RFC3339 with fixed width nanoseconds
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Renders one console line: [timestamp] [tags] [severity] message.
// Parts that are empty are left out, as is the timestamp when withTimestamp is false.
func (event Event) Format(withTimestamp bool) (text string) {
	var parts []string
	if withTimestamp && !event.Timestamp.IsZero() {
		parts = append(parts, "["+event.Timestamp.Format(timestampLayout)+"]")
	}
	if len(event.Tags) > 0 {
		parts = append(parts, "["+strings.Join(event.Tags, "/")+"]")
	}
	if event.Severity != "" {
		parts = append(parts, "["+event.Severity+"]")
	}
	if event.Message != "" {
		parts = append(parts, event.Message)
	}

	text = strings.Join(parts, " ")
	// No newline, message creator determines newlines
	return
}
