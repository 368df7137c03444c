// Package contextstore houses concrete implementations of core.ContextStore.
// The interface itself (and the Context struct) live in the core package to
// centralize domain contracts. Keeping only implementations here prevents the
// dialog engine from depending on concrete storage.
//
// Add additional backends (Redis, SQL, ...) alongside without changing any
// calling code; only the wiring layer decides which implementation to
// instantiate.
package contextstore
