// Central logging system. Buffers messages and writes to configured outputs
package logctx

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Entry for logging events
func LogEvent(ctx context.Context, eventLevel int, severity string, message string, vars ...any) {
	logger := GetLogger(ctx)
	if logger == nil || !logger.accepts(eventLevel, severity) {
		return
	}

	// vars might be empty - check to omit formatting
	if len(vars) > 0 && strings.Contains(message, "%") {
		message = fmt.Sprintf(message, vars...)
	}

	logger.enqueue(Event{
		Timestamp: time.Now(),
		Tags:      GetTagList(ctx),
		Severity:  severity,
		Message:   message,
	})
}
