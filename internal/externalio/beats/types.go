package beats

import (
	"sync"
	"sync/atomic"

	lumberjack "github.com/elastic/go-lumber/client/v2"
)

type OutModule struct {
	Namespace []string
	endpoint  string
	sink      *lumberjack.SyncClient
	mu        sync.Mutex // sync client handles one batch at a time
	metrics   MetricStorage
}

type MetricStorage struct {
	EventsSent   atomic.Uint64
	SendFailures atomic.Uint64
}
