package beats

import (
	"context"
	"fmt"
	"multilookup/internal/global"
	"os"
)

// Ships one resolution record to the configured beats server
func (mod *OutModule) Write(ctx context.Context, record global.ResolutionRecord) (eventsSent int, err error) {
	if mod == nil {
		return
	}

	outcome := "success"
	address := record.Address
	message := fmt.Sprintf("%s, %s", record.Hostname, record.Address)
	if !record.Resolved {
		outcome = "failure"
		address = ""
		message = fmt.Sprintf("%s, %s", record.Hostname, global.NotResolvedMarker)
	}

	localHostname, _ := os.Hostname()

	fields := map[string]interface{}{
		// Minimum required fields
		"@timestamp": record.Timestamp,
		"message":    message,

		"host": map[string]interface{}{
			"hostname": localHostname,
		},
		"agent": map[string]interface{}{
			"program": global.ProgBaseName,
			"version": global.ProgVersion,
			"type":    "filebeat",
			"pid":     os.Getpid(),
		},
		"event": map[string]interface{}{
			"kind":     "event",
			"category": "network",
			"outcome":  outcome,
		},
		"dns": map[string]interface{}{
			"question": map[string]interface{}{
				"name": record.Hostname,
			},
			"resolved_ip": address,
		},
		"resolver": map[string]interface{}{
			"worker": record.Resolver,
		},
	}
	events := []interface{}{fields}

	mod.mu.Lock()
	defer mod.mu.Unlock()

	if mod.sink == nil {
		err = fmt.Errorf("beats output to %s already shut down", mod.endpoint)
		return
	}

	eventsSent, err = mod.sink.Send(events)
	if err != nil {
		mod.metrics.SendFailures.Add(1)
		err = fmt.Errorf("failed sending record for '%s' to %s: %w", record.Hostname, mod.endpoint, err)
		return
	}
	mod.metrics.EventsSent.Add(uint64(eventsSent))
	return
}
