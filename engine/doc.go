// Package engine provides helpers for working with the modernc.org/sqlite
// driver: opening connections and registering the vec_cosine/vec_l2 SQL
// scalar functions. It keeps a thin surface so the sqlite backend and tests
// can share the same driver instance.
package engine
