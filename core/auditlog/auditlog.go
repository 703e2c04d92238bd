package auditlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// header is written once when the CSV file is first created.
var header = []string{"timestamp", "level", "description", "message"}

// Log is an append-only CSV audit trail for one sync job.
type Log struct {
	path string
	loc  *time.Location
	now  func() time.Time
}

// Open prepares the audit trail file <cfg.Path>/<name>.csv. The file itself
// is created lazily on the first Write.
func Open(cfg Config, name string) (*Log, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid audit timezone %q: %w", cfg.Timezone, err)
	}

	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	return &Log{
		path: filepath.Join(cfg.Path, name+".csv"),
		loc:  loc,
		now:  time.Now,
	}, nil
}

// Path returns the location of the CSV file.
func (l *Log) Path() string {
	return l.path
}

// Write appends one audit event. The header row is written once, when the
// file does not exist yet.
func (l *Log) Write(level, description, message string) error {
	writeHeader := false
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		writeHeader = true
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write audit log header: %w", err)
		}
	}

	ts := l.now().In(l.loc).Format(time.RFC3339Nano)
	if err := w.Write([]string{ts, level, description, message}); err != nil {
		return fmt.Errorf("failed to write audit log row: %w", err)
	}

	w.Flush()
	return w.Error()
}

// Info appends an INFO level event.
func (l *Log) Info(description, message string) error {
	return l.Write("INFO", description, message)
}

// Warning appends a WARNING level event.
func (l *Log) Warning(description, message string) error {
	return l.Write("WARNING", description, message)
}

// Error appends an ERROR level event.
func (l *Log) Error(description, message string) error {
	return l.Write("ERROR", description, message)
}
