// Package search defines the storage-agnostic similarity-search contract:
// the Search interface every backend implements, the validation rules
// applied before any I/O, the typed error taxonomy, and the shared
// score-and-rank helper used by backends that compare vectors client-side.
package search
