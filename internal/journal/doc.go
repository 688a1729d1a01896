// Package journal persists calculator history in SQLite so that it survives
// between runs.
//
// The journal is append-only like the in-memory history it backs. Each run
// writes its evaluations under a session ID; Load returns every evaluation
// from every session in the order they were written.
package journal
