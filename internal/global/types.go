package global

import "time"

type CtxKey string

// Outcome of one hostname lookup
type ResolutionRecord struct {
	Timestamp time.Time
	Hostname  string
	Address   string // empty when not resolved
	Resolved  bool
	Resolver  int // id of the resolver worker that handled it
}
