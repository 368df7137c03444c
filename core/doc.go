// Package core provides the foundational domain types and interfaces used by
// DialogMesh. It defines the core abstractions for:
//
//   - ConversationContext (per-user position in the dialog state machine)
//   - Knowledge data (course details served by the menu flow)
//   - Registration drafts and completed registration records
//   - Audit events (unresolved queries, captured contacts, registrations)
//   - Pluggable stores for conversation state and audit persistence
//
// The package intentionally keeps implementation concerns (persistence, dialog
// orchestration, transport) out of scope, exposing small interfaces to enable
// custom backends and extensions.
package core
