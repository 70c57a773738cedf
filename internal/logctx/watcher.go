package logctx

import (
	"fmt"
	"io"
	"multilookup/internal/global"
	"strings"
	"time"
)

const (
	dedupWindow      = 5 * time.Second
	dedupMinRepeats  = 10
	suppressCooldown = time.Minute
)

// Blocks until every watcher has drained its buffer
func (logger *Logger) Wait() {
	logger.wg.Wait()
}

// Wakes watchers blocked on an empty buffer
func (logger *Logger) Wake() {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()
	logger.cond.Broadcast()
}

// Blocks for the next buffered event. ok is false once Done is closed and the buffer is empty.
func (logger *Logger) next() (event Event, hideTimestamps, collapseRepeats bool, ok bool) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	for len(logger.queue) == 0 {
		select {
		case <-logger.Done:
			return
		default:
			logger.cond.Wait()
		}
	}

	event = logger.queue[0]
	logger.queue = logger.queue[1:]
	hideTimestamps = logger.HideTimestamps
	collapseRepeats = logger.CollapseRepeats
	ok = true
	return
}

// Starts a goroutine printing buffered events.
// Error events go to errOutput (output when nil), all others to output.
func StartWatcher(logger *Logger, output io.Writer, errOutput io.Writer) {
	if errOutput == nil {
		errOutput = output
	}

	logger.wg.Add(1)
	go func() {
		defer logger.wg.Done()

		var dedup dedupState
		for {
			event, hideTimestamps, collapseRepeats, ok := logger.next()
			if !ok {
				return
			}

			dest := output
			if event.Severity == global.ErrorLog {
				dest = errOutput
			}

			if collapseRepeats {
				notice, skip := dedup.check(event, time.Now())
				if notice != "" {
					fmt.Fprint(dest, notice)
				}
				if skip {
					continue
				}
			}
			fmt.Fprint(dest, event.Format(!hideTimestamps))
		}
	}()
}

// Tracks consecutive identical messages so floods collapse into a periodic notice
type dedupState struct {
	lastMsg          string
	repeatCount      int
	lastSuppressTime time.Time
}

// Reports whether event repeats the previous message within the window.
// Returns a suppression notice at most once per cooldown.
// Warnings and errors are always printed.
func (dedup *dedupState) check(event Event, now time.Time) (notice string, skip bool) {
	repeated := event.Severity == global.InfoLog &&
		event.Message != "" &&
		event.Message == dedup.lastMsg &&
		now.Sub(event.Timestamp) <= dedupWindow
	if !repeated {
		dedup.lastMsg = event.Message
		dedup.repeatCount = 1
		return
	}

	skip = true
	dedup.repeatCount++
	if dedup.repeatCount < dedupMinRepeats || now.Sub(dedup.lastSuppressTime) < suppressCooldown {
		return
	}

	notice = fmt.Sprintf("[%s] [%s] Suppressed %d repeated messages: %s",
		strings.Join(event.Tags, "/"), global.InfoLog, dedup.repeatCount, dedup.lastMsg)
	dedup.lastSuppressTime = now
	dedup.repeatCount = 0
	return
}
