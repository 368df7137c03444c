// Package extract pulls registration data (name, document id, phone, email)
// out of free user text. It applies an explicit ordered pipeline of pure
// heuristics, each filling only fields the previous step left empty, so every
// heuristic stays testable in isolation.
package extract
