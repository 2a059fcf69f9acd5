package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	_ "github.com/lib/pq" // register Postgres driver

	"github.com/embedx/vecsearch/metric"
	"github.com/embedx/vecsearch/search"
	"github.com/embedx/vecsearch/vector"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "vectors"

// Config holds the connection parameters for a PostgreSQL store.
type Config struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string
	Table    string
}

func (c Config) dsn() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.Host),
		fmt.Sprintf("dbname=%s", c.Database),
	}
	if c.Port > 0 {
		parts = append(parts, fmt.Sprintf("port=%d", c.Port))
	}
	if c.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", c.Username))
	}
	if c.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.Password))
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	parts = append(parts, fmt.Sprintf("sslmode=%s", sslMode))
	return strings.Join(parts, " ")
}

// Store is a PostgreSQL-backed implementation of search.Search. Records live
// in a fixed (id, vector BYTEA) table; duplicate ids overwrite via upsert.
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

// New creates a Store over a caller-supplied connection pool and ensures the
// table exists. The caller keeps ownership of db; Close does not touch it.
func New(db *sql.DB, table string, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("postgres: db is nil")
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

// Open connects to PostgreSQL with the given config and builds a Store that
// owns the pool; Close releases it. The connection is verified with a ping
// so malformed parameters fail at construction time.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	s, err := New(db, cfg.Table, opts...)
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
    vector BYTEA NOT NULL
)`, table))
	return err
}

// IndexVector validates and persists one record inside a scoped transaction:
// execute insert, commit on success, roll back on any failure. An existing
// id is overwritten.
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
	stmt := fmt.Sprintf(`INSERT INTO %s(id, vector) VALUES($1, $2)
ON CONFLICT (id) DO UPDATE SET vector = EXCLUDED.vector`, s.table)
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

// QuerySimilar retrieves all rows, scores each against the query with the
// configured metric, and returns the topK best matches. Ties keep row order.
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

// Close releases the connection pool when the Store owns it (Open); for
// pools supplied via New it is a no-op.
func (s *Store) Close() error {
	if s.ownsDB && s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ search.Search = (*Store)(nil)
