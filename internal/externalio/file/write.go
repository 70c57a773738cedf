package file

import (
	"fmt"
	"strings"
)

// Writes one formatted line to the file.
// A trailing newline is added if the formatted text has none.
func (mod *OutModule) Printf(format string, vars ...any) (err error) {
	if mod == nil {
		return
	}

	newLine := fmt.Sprintf(format, vars...)

	// Always ensure outputs have only one trailing newline
	if !strings.HasSuffix(newLine, "\n") {
		newLine += "\n"
	}

	mod.mu.Lock()
	defer mod.mu.Unlock()

	if mod.closed {
		err = fmt.Errorf("write to closed output '%s'", mod.filePath)
		return
	}

	n, err := mod.writer.WriteString(newLine)
	if err != nil {
		return
	}
	mod.metrics.LinesWritten.Add(1)
	mod.metrics.BytesWritten.Add(uint64(n))
	return
}

// Flushes buffered lines to the file
func (mod *OutModule) Flush() (err error) {
	if mod == nil {
		return
	}

	mod.mu.Lock()
	defer mod.mu.Unlock()

	if mod.closed {
		return
	}
	err = mod.writer.Flush()
	return
}

// Flushes and closes the file. Safe to call more than once.
func (mod *OutModule) Close() (err error) {
	if mod == nil {
		return
	}

	mod.mu.Lock()
	defer mod.mu.Unlock()

	if mod.closed {
		return
	}
	mod.closed = true

	err = mod.writer.Flush()
	closeErr := mod.sink.Close()
	if err == nil {
		err = closeErr
	}
	return
}

// Path the module writes to
func (mod *OutModule) Path() (filePath string) {
	filePath = mod.filePath
	return
}
