package file

import (
	"io"
	"strings"
)

// Returns the next line without its terminator.
// Returns io.EOF once the file is exhausted; a final line without a newline is still returned.
func (mod *InModule) Next() (line string, err error) {
	if mod.done {
		err = io.EOF
		return
	}

	line, err = mod.reader.ReadString('\n')
	if err == io.EOF {
		mod.done = true
		if line == "" {
			return
		}
		err = nil
	} else if err != nil {
		mod.done = true
		return
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	mod.metrics.LinesRead.Add(1)
	return
}

// Path the module reads from
func (mod *InModule) Path() (filePath string) {
	filePath = mod.filePath
	return
}

func (mod *InModule) Close() (err error) {
	if mod == nil || mod.sink == nil {
		return
	}
	mod.done = true
	err = mod.sink.Close()
	return
}
