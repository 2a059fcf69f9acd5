// Package cassandra implements the similarity-search contract over a
// Cassandra or DataStax Astra cluster. Indexing issues a parameterized
// insert; querying delegates candidate selection to the store's native ANN
// ordering operator and, by default, re-ranks the returned candidates
// client-side with the configured metric in case the store's ordering metric
// differs.
package cassandra
