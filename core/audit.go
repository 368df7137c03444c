package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Audit event kinds as persisted by sinks.
const (
	KindUnresolvedQuery       = "unresolved_query"
	KindContactCaptured       = "contact_captured"
	KindRegistrationCompleted = "registration_completed"
)

// AuditEvent is one append-only record emitted by the dialog engine. Events
// are immutable after construction.
type AuditEvent interface {
	// Kind returns the event kind constant.
	Kind() string
	// User returns the id of the user the event concerns.
	User() string
	// At returns the UTC timestamp of the event.
	At() time.Time
}

// AuditSink receives audit events. Delivery is fire-and-forget relative to
// the response path: the engine reports sink errors to operators but never
// lets them block or fail a turn.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent) error
}

// UnresolvedQuery records user text that matched no intent or menu option.
type UnresolvedQuery struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RawText   string    `json:"raw_text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUnresolvedQuery creates an unresolved-query event.
func NewUnresolvedQuery(userID, rawText string, ts time.Time) UnresolvedQuery {
	return UnresolvedQuery{ID: NewID(), UserID: userID, RawText: rawText, Timestamp: ts.UTC()}
}

// Kind returns the event kind constant.
func (UnresolvedQuery) Kind() string { return KindUnresolvedQuery }

// User returns the id of the user the event concerns.
func (e UnresolvedQuery) User() string { return e.UserID }

// At returns the UTC timestamp of the event.
func (e UnresolvedQuery) At() time.Time { return e.Timestamp }

// ContactCaptured records a phone number or email left for an advisor.
// Exactly one of Phone / Email is expected to be non-empty.
type ContactCaptured struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewContactCaptured creates a contact-captured event.
func NewContactCaptured(userID, phone, email string, ts time.Time) ContactCaptured {
	return ContactCaptured{ID: NewID(), UserID: userID, Phone: phone, Email: email, Timestamp: ts.UTC()}
}

// Kind returns the event kind constant.
func (ContactCaptured) Kind() string { return KindContactCaptured }

// User returns the id of the user the event concerns.
func (e ContactCaptured) User() string { return e.UserID }

// At returns the UTC timestamp of the event.
func (e ContactCaptured) At() time.Time { return e.Timestamp }

// RegistrationCompleted records a fully collected registration form.
type RegistrationCompleted struct {
	Record RegistrationRecord `json:"record"`
}

// NewRegistrationCompleted wraps a completed record as an audit event.
func NewRegistrationCompleted(rec RegistrationRecord) RegistrationCompleted {
	return RegistrationCompleted{Record: rec}
}

// Kind returns the event kind constant.
func (RegistrationCompleted) Kind() string { return KindRegistrationCompleted }

// User returns the id of the user the event concerns.
func (e RegistrationCompleted) User() string { return e.Record.UserID }

// At returns the UTC timestamp of the event.
func (e RegistrationCompleted) At() time.Time { return e.Record.Timestamp }

// NewID generates a new unique identifier for audit events and records.
func NewID() string { return uuid.NewString() }
