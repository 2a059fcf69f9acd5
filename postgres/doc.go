// Package postgres implements the similarity-search contract over a
// PostgreSQL database using lib/pq. The backend has no native ANN index:
// QuerySimilar retrieves the full candidate set and ranks client-side, an
// O(n) per query trade-off acceptable only for small corpora.
package postgres
