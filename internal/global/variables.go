package global

var (
	// Console detail level, set once from -v before any worker starts
	//
	//	0 - None: errors only (unopenable input files, sink failures)
	//	1 - Standard: skipped names, per-worker exit lines, run totals
	//	2 - Progress: files as they are picked up, per-worker counts
	//	3 - Data: each hostname as it is queued or resolved
	//	4 - FullData: same as Data
	//	5 - Debug: termination internals
	Verbosity int
)
