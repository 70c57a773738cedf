package file

import (
	"bufio"
	"io"
	"sync"
)

// Line-oriented writer for one log sink. mu serializes writers so lines never interleave.
type OutModule struct {
	Namespace []string
	filePath  string
	sink      io.WriteCloser
	writer    *bufio.Writer
	mu        sync.Mutex
	closed    bool
	metrics   OutMetricStorage
}

// Lazy, non-restartable line reader over one input file
type InModule struct {
	Namespace []string
	filePath  string
	sink      io.ReadCloser
	reader    *bufio.Reader
	done      bool
	metrics   InMetricStorage
}
