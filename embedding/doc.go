// Package embedding defines the embedder collaborator that turns free-form
// text into a vector, plus an OpenAI-backed implementation. The search core
// is embedding-agnostic; it only requires that embedders produce a finite
// numeric vector.
package embedding
