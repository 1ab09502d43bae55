// Package logging builds the charmbracelet loggers used by the CLI.
//
// Local play owns the terminal (alt screen), so it logs to a size-rotated
// file. The SSH server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// NewFile creates a logger writing to a rotating file at path.
// A leading ~ expands to the home directory. The returned closer flushes and
// closes the current file.
func NewFile(path, prefix string) (*log.Logger, io.Closer, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	logger := log.NewWithOptions(rotator, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Formatter:       log.LogfmtFormatter,
	})
	return logger, rotator, nil
}

// NewStderr creates a timestamped logger on stderr.
func NewStderr(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
