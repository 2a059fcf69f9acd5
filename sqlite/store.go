package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/embedx/vecsearch/engine"
	"github.com/embedx/vecsearch/metric"
	"github.com/embedx/vecsearch/search"
	"github.com/embedx/vecsearch/vector"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "vectors"

// Store is a SQLite-backed implementation of search.Search. Records live in
// a fixed (id, vector BLOB) table; duplicate ids overwrite the existing row.
type Store struct {
	db     *sql.DB
	table  string
	metric metric.Metric
	log    logr.Logger
	ownsDB bool
}

// Option configures a Store.
type Option func(*Store)

// WithMetric overrides the default cosine metric.
func WithMetric(m metric.Metric) Option {
	return func(s *Store) { s.metric = m }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a Store over a caller-supplied database handle and ensures the
// table exists. The caller keeps ownership of db; Close does not touch it.
func New(db *sql.DB, table string, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlite: db is nil")
	}
	if table == "" {
		table = DefaultTable
	}
	s := &Store{db: db, table: table, metric: metric.Cosine, log: logr.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	if err := EnsureSchema(db, table); err != nil {
		return nil, err
	}
	return s, nil
}

// Open opens (or creates) the SQLite database at path and builds a Store
// that owns the handle; Close releases it. Pass ":memory:" for an ephemeral
// store.
func Open(path string, table string, opts ...Option) (*Store, error) {
	db, err := engine.Open(path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// Each pooled connection to :memory: would open its own database.
		db.SetMaxOpenConns(1)
	}
	s, err := New(db, table, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.ownsDB = true
	return s, nil
}

// EnsureSchema creates the vectors table if it does not already exist.
func EnsureSchema(db *sql.DB, table string) error {
	_, err := db.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id     TEXT PRIMARY KEY,
    vector BLOB NOT NULL
)`, table))
	return err
}

// IndexVector validates and persists one record inside a transaction,
// rolling back on any execution failure. An existing id is overwritten.
func (s *Store) IndexVector(ctx context.Context, vec vector.Vector, meta search.Metadata) error {
	if err := search.ValidateVector("vector", vec); err != nil {
		return err
	}
	id, err := search.ValidateMetadata(meta)
	if err != nil {
		return err
	}
	blob, err := vector.Encode(vec)
	if err != nil {
		return &search.StorageError{Op: "encode vector", Err: err}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &search.StorageError{Op: "begin transaction", Err: err}
	}
	stmt := fmt.Sprintf(`INSERT OR REPLACE INTO %s(id, vector) VALUES(?, ?)`, s.table)
	if _, err := tx.ExecContext(ctx, stmt, id, blob); err != nil {
		_ = tx.Rollback()
		return &search.StorageError{Op: "insert into " + s.table, Err: err}
	}
	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return &search.StorageError{Op: "commit insert into " + s.table, Err: err}
	}
	s.log.V(1).Info("indexed vector", "id", id, "dim", len(vec))
	return nil
}

// IndexVectors indexes the batch in order, stopping at the first failure.
func (s *Store) IndexVectors(ctx context.Context, batch []search.Record) error {
	return search.IndexAll(ctx, s, batch)
}

// QuerySimilar fetches every stored row, scores it against the query with
// the configured metric, and returns the topK best matches. Ties keep row
// order.
func (s *Store) QuerySimilar(ctx context.Context, vec vector.Vector, topK int) ([]search.ScoredResult, error) {
	if err := search.ValidateVector("query vector", vec); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return nil, nil
	}

	stmt := fmt.Sprintf(`SELECT id, vector FROM %s`, s.table)
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, &search.StorageError{Op: "select from " + s.table, Err: err}
	}
	defer rows.Close()

	var candidates []search.Candidate
	for rows.Next() {
		var id string
		var blob []byte
		if err := rows.Scan(&id, &blob); err != nil {
			return nil, &search.StorageError{Op: "scan row from " + s.table, Err: err}
		}
		stored, err := vector.Decode(blob)
		if err != nil {
			return nil, &search.StorageError{Op: "decode vector for " + id, Err: err}
		}
		candidates = append(candidates, search.Candidate{ID: id, Vector: stored})
	}
	if err := rows.Err(); err != nil {
		return nil, &search.StorageError{Op: "iterate rows from " + s.table, Err: err}
	}

	results := search.Rank(s.metric, vec, candidates, topK)
	s.log.V(1).Info("query complete", "candidates", len(candidates), "returned", len(results))
	return results, nil
}

// Close releases the database handle when the Store owns it (Open); for
// handles supplied via New it is a no-op.
func (s *Store) Close() error {
	if s.ownsDB && s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ search.Search = (*Store)(nil)
