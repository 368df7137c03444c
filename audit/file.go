package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hupe1980/dialogmesh/core"
)

// record is the NDJSON envelope written per event.
type record struct {
	Kind    string          `json:"kind"`
	Payload core.AuditEvent `json:"payload"`
}

// FileSink appends audit events to a newline-delimited JSON file. Each event
// becomes one envelope line {"kind":..., "payload":...}. Writes are
// serialized and use O_APPEND so concurrent processes do not interleave lines.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileSink opens (creating if needed) the NDJSON file at path, creating
// parent directories as required.
func NewFileSink(path string) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create audit directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return &FileSink{file: f}, nil
}

// Record appends one NDJSON line for the event.
func (s *FileSink) Record(_ context.Context, event core.AuditEvent) error {
	line, err := json.Marshal(record{Kind: event.Kind(), Payload: event})
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.Write(line); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
