// Package sqlite implements the similarity-search contract over an embedded
// SQLite database. Like the postgres backend it has no native ANN index:
// QuerySimilar scans every stored row and ranks client-side, which is O(n)
// per query and acceptable only for small corpora.
package sqlite
