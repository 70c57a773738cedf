package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion  string = "v1.0.0"
	ProgBaseName string = "multilookup"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	// Run limits
	MaxInputFiles        int           = 100
	MaxRequesterThreads  int           = 10
	MaxResolverThreads   int           = 10
	MaxNameLength        int           = 255
	MaxIPLength          int           = 46 // INET6_ADDRSTRLEN
	DefaultHostQueueSize int           = 10
	DefaultLookupTimeout time.Duration = 5 * time.Second
	DefaultBeatsTimeout  time.Duration = 3 * time.Second
	DefaultDNSPort       string        = "53"

	// Log line formats
	RequestAddedFmt   string = "Added %s for resolution\n"
	RequestSkippedFmt string = "Skipping %s: Address name length must not exceed %d\n"
	ResolvedFmt       string = "%s, %s\n"
	NotResolvedFmt    string = "%s, NOT_RESOLVED\n"
	NotResolvedMarker string = "NOT_RESOLVED"
	OpenFailureFmt    string = "Unable to open file %s: %v\n"

	// Namespacing Name Components
	NSTest          string = "Test"
	NSCLI           string = "CLI"
	NSLookup        string = "Lookup"
	NSRequester     string = "Requester"
	NSResolver      string = "Resolver"
	NSQueue         string = "Queue"
	NSPaths         string = "Paths"
	NSHosts         string = "Hosts"
	NSRequestLog    string = "RequestLog"
	NSResolutionLog string = "ResolutionLog"
	NSoFile         string = "File"
	NSoBeats        string = "Beats"
	NSoDNS          string = "DNS"
)
