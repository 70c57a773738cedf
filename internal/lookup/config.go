package lookup

import (
	"fmt"
	"multilookup/internal/global"

	"github.com/pbnjay/memory"
)

// Rough per slot footprint of a queued hostname (string header plus longest name)
const hostSlotBytes = 16 + 255

// Fills unset optional values
func (cfg *Config) setDefaults() {
	if cfg.HostQueueSize == 0 {
		cfg.HostQueueSize = global.DefaultHostQueueSize
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = global.DefaultLookupTimeout
	}
}

// Checks run preconditions, naming the first one violated
func (cfg Config) Validate() (err error) {
	if cfg.Requesters < 1 || cfg.Requesters > global.MaxRequesterThreads {
		err = fmt.Errorf("number of requester threads must be between 1 and %d (got %d)",
			global.MaxRequesterThreads, cfg.Requesters)
		return
	}
	if cfg.Resolvers < 1 || cfg.Resolvers > global.MaxResolverThreads {
		err = fmt.Errorf("number of resolver threads must be between 1 and %d (got %d)",
			global.MaxResolverThreads, cfg.Resolvers)
		return
	}
	if len(cfg.InputFiles) == 0 {
		err = fmt.Errorf("you must enter at least one data file")
		return
	}
	if len(cfg.InputFiles) > global.MaxInputFiles {
		err = fmt.Errorf("the maximum number of data files is %d (got %d)",
			global.MaxInputFiles, len(cfg.InputFiles))
		return
	}
	if cfg.RequestLogPath == "" {
		err = fmt.Errorf("please enter a requester log filename")
		return
	}
	if cfg.ResolutionLogPath == "" {
		err = fmt.Errorf("please enter a resolver log filename")
		return
	}
	if cfg.HostQueueSize < 0 {
		err = fmt.Errorf("hostname queue size must be at least 1 (got %d)", cfg.HostQueueSize)
		return
	}

	// No queue larger than what the machine can hold
	availMem := memory.FreeMemory()
	needed := uint64(cfg.HostQueueSize) * hostSlotBytes
	if availMem > 0 && needed > availMem {
		err = fmt.Errorf("hostname queue size %d needs %d bytes but only %d are free",
			cfg.HostQueueSize, needed, availMem)
		return
	}
	return
}
