// Package audit provides AuditSink implementations: an in-memory sink for
// tests, an NDJSON file appender, and (in the sqlite sub-package) a durable
// SQLite-backed sink. The core.AuditSink interface lives in core; keeping
// only implementations here mirrors how conversation-state backends are laid
// out in contextstore.
package audit
