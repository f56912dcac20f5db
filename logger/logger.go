// Package logger configures the process-wide zerolog output and offers a
// helper for dumping intermediate results as JSON files.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. Debug enables the debug
// level, otherwise info and above are shown.
func New(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// DumpJSON writes data as indented JSON to dir/name.json, creating the
// directory when needed.
func DumpJSON(dir, name string, data interface{}) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create dump directory: %w", err)
	}
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", name, err)
	}
	file := filepath.Join(dir, name+".json")
	if err := os.WriteFile(file, bytes, 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", file, err)
	}
	return nil
}
