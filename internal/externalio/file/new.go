package file

import (
	"bufio"
	"fmt"
	"multilookup/internal/global"
	"os"
)

// Creates new file input module (line source) for the given path
func NewInput(namespace []string, filePath string) (module *InModule, err error) {
	file, err := os.OpenFile(filePath, os.O_RDONLY, 0)
	if err != nil {
		err = fmt.Errorf("failed to open source file: %w", err)
		return
	}

	module = &InModule{
		Namespace: append(append([]string(nil), namespace...), global.NSoFile),
		filePath:  filePath,
		sink:      file,
		reader:    bufio.NewReader(file),
	}
	return
}

// Creates new file output module. Existing content at the path is truncated.
func NewOutput(namespace []string, filePath string) (module *OutModule, err error) {
	if filePath == "" {
		err = fmt.Errorf("no output file path given")
		return
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0640)
	if err != nil {
		err = fmt.Errorf("failed to open output file: %w", err)
		return
	}

	module = &OutModule{
		Namespace: append(append([]string(nil), namespace...), global.NSoFile),
		filePath:  filePath,
		sink:      file,
		writer:    bufio.NewWriter(file),
	}
	return
}
