package beats

import (
	"fmt"
	"multilookup/internal/global"

	lumberjack "github.com/elastic/go-lumber/client/v2"
)

// Creates new beats (lumberjack) output module. Returns nil nil if no endpoint.
func NewOutput(namespace []string, endpoint string) (module *OutModule, err error) {
	if endpoint == "" {
		return
	}

	compression := lumberjack.CompressionLevel(0)
	timeout := lumberjack.Timeout(global.DefaultBeatsTimeout)

	ljClient, err := lumberjack.SyncDial(endpoint, compression, timeout)
	if err != nil {
		err = fmt.Errorf("failed connection to beats server: %w", err)
		return
	}

	module = &OutModule{
		Namespace: append(append([]string(nil), namespace...), global.NSoBeats),
		endpoint:  endpoint,
		sink:      ljClient,
	}
	return
}
