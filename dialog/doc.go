// Package dialog implements the per-user conversation state machine that
// orchestrates DialogMesh. The Engine consumes one (user, text) pair per
// turn, reads and writes the user's conversation context, and routes the
// input through a global-command short-circuit, a step-specific handler, or
// the intent resolver. It is the sole writer of conversation contexts and
// the sole emitter of audit events.
//
// Concurrency model: turns from the same user are serialized by a per-user
// lock so interleaved messages cannot race on one context; turns from
// different users run fully in parallel and never block each other.
package dialog
