// Requesters read hostname files and feed the shared hostname queue
package lookup

import (
	"context"
	"errors"
	"io"
	"multilookup/internal/externalio/file"
	"multilookup/internal/global"
	"multilookup/internal/logctx"
	"multilookup/internal/queue/bounded"
	"runtime/debug"
	"strconv"
)

func NewRequester(namespace []string, id int, inQueue, outQueue *bounded.Queue[string], requestLog *file.OutModule) (new *Requester) {
	ns := append([]string{}, namespace...)
	ns = append(ns, global.NSRequester, strconv.Itoa(id))

	new = &Requester{
		Namespace:  ns,
		id:         id,
		inbox:      inQueue,
		outbox:     outQueue,
		requestLog: requestLog,
		Metrics:    &RequesterMetrics{},
	}
	return
}

// Services input paths until none remain, then reports its file count.
// Returns early only when the hostname queue closes or ctx is cancelled.
func (instance *Requester) Run(ctx context.Context) {
	for ctx.Err() == nil {
		path, ok := instance.inbox.Dequeue(ctx)
		if !ok {
			break
		}

		err := instance.serviceFile(ctx, path)
		if err != nil {
			if !errors.Is(err, bounded.ErrClosed) && ctx.Err() == nil {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
					"requester %d stopped early: %v\n", instance.id, err)
			}
			break
		}
	}

	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"requester %d serviced %d files\n", instance.id, instance.Metrics.FilesServiced.Load())
}

// Reads one file to the end, queueing every valid hostname.
// Only hostname queue failures are returned, everything else is logged.
func (instance *Requester) serviceFile(ctx context.Context, path string) (err error) {
	// Record panics and continue with the next file
	defer func() {
		if fatalError := recover(); fatalError != nil {
			stack := debug.Stack()
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"panic in requester worker thread while servicing '%s': %v\n%s", path, fatalError, stack)
		}
	}()

	input, err := file.NewInput(instance.Namespace, path)
	if err != nil {
		instance.Metrics.FilesFailed.Add(1)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, global.OpenFailureFmt, path, err)
		err = nil
		return
	}
	defer func() {
		lerr := input.Close()
		if lerr != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"failed closing input file '%s': %v\n", path, lerr)
		}
	}()

	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
		"requester %d servicing file '%s'\n", instance.id, path)

	for {
		if ctx.Err() != nil {
			err = ctx.Err()
			return
		}

		line, readErr := input.Next()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"failed reading file '%s': %v\n", path, readErr)
			break
		}
		instance.Metrics.LinesRead.Add(1)

		if line == "" {
			continue
		}

		if len(line) > global.MaxNameLength {
			instance.Metrics.Skipped.Add(1)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				global.RequestSkippedFmt, line, global.MaxNameLength)
			instance.writeRequestLog(ctx, global.RequestSkippedFmt, line, global.MaxNameLength)
			continue
		}

		err = instance.outbox.Enqueue(ctx, line)
		if err != nil {
			return
		}
		instance.Metrics.Accepted.Add(1)
		instance.writeRequestLog(ctx, global.RequestAddedFmt, line)

		logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
			"queued hostname '%s' from '%s'\n", line, path)
	}

	instance.Metrics.FilesServiced.Add(1)
	return
}

func (instance *Requester) writeRequestLog(ctx context.Context, format string, vars ...any) {
	err := instance.requestLog.Printf(format, vars...)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
			"failed writing request log: %v\n", err)
	}
}
