package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
)

// OpenLogFile opens path for appending, creating parent directories as needed.
// The returned file is the sink for either logger backend.
func OpenLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}
