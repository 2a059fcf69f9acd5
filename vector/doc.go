// Package vector defines the embedding vector type shared by all backends,
// its validation rules, and the BLOB encoding used to persist vectors in
// relational stores.
package vector
