package logctx

import "multilookup/internal/global"

// Errors are always recorded, everything else only up to the print level
func (logger *Logger) accepts(eventLevel int, eventSeverity string) (ok bool) {
	if eventSeverity == global.ErrorLog {
		ok = true
		return
	}

	logger.mutex.Lock()
	defer logger.mutex.Unlock()
	ok = eventLevel <= logger.PrintLevel
	return
}

// Buffers event for the watcher
func (logger *Logger) enqueue(event Event) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	logger.queue = append(logger.queue, event)
	logger.cond.Signal() // Notify watcher that new event is available
}
