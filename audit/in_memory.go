package audit

import (
	"context"
	"sync"

	"github.com/hupe1980/dialogmesh/core"
)

// InMemorySink is a volatile AuditSink collecting events in a slice. It is
// intended for tests and demos that need to inspect what the engine emitted.
type InMemorySink struct {
	mu     sync.Mutex
	events []core.AuditEvent
}

// NewInMemorySink constructs an empty in-memory sink.
func NewInMemorySink() *InMemorySink {
	return &InMemorySink{}
}

// Record appends the event.
func (s *InMemorySink) Record(_ context.Context, event core.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a defensive copy of all recorded events in emission order.
func (s *InMemorySink) Events() []core.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

// ByKind returns recorded events of one kind, in emission order.
func (s *InMemorySink) ByKind(kind string) []core.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.AuditEvent
	for _, e := range s.events {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}
