package cassandra

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/gocql/gocql"

	"github.com/embedx/vecsearch/metric"
	"github.com/embedx/vecsearch/search"
	"github.com/embedx/vecsearch/vector"
)

// Store is a Cassandra/Astra-backed implementation of search.Search.
// Records live in a (id, vector) table whose ANN index is owned entirely by
// the cluster; this package never builds an index itself.
type Store struct {
	session     *gocql.Session
	keyspace    string
	table       string
	metric      metric.Metric
	nativeOrder bool
	log         logr.Logger
	ownsSession bool
}

// Option configures a Store.
type Option func(*Store)

// WithMetric overrides the default cosine metric used for client-side
// scoring.
func WithMetric(m metric.Metric) Option {
	return func(s *Store) { s.metric = m }
}

// WithNativeOrder trusts the cluster's ANN ordering as authoritative:
// QuerySimilar annotates candidates with scores in the order the store
// returned them instead of re-sorting client-side. Use it when the store's
// ANN metric matches the configured one and the re-rank is pure overhead.
func WithNativeOrder() Option {
	return func(s *Store) { s.nativeOrder = true }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a Store over a caller-supplied session. The caller keeps
// ownership of the session; Close does not touch it.
func New(session *gocql.Session, keyspace, table string, opts ...Option) (*Store, error) {
	if session == nil {
		return nil, fmt.Errorf("cassandra: session is nil")
	}
	if keyspace == "" || table == "" {
		return nil, fmt.Errorf("cassandra: keyspace and table are required")
	}
	s := &Store{
		session:  session,
		keyspace: keyspace,
		table:    table,
		metric:   metric.Cosine,
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Open establishes a session for the configured connection mode (secure
// bundle or hosts/port) and builds a Store that owns it; Close releases it.
func Open(cfg Config, opts ...Option) (*Store, error) {
	cluster, err := cfg.ClusterConfig()
	if err != nil {
		return nil, err
	}
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, err
	}
	s, err := New(session, cfg.Keyspace, cfg.Table, opts...)
	if err != nil {
		session.Close()
		return nil, err
	}
	s.ownsSession = true
	return s, nil
}

func (s *Store) insertStmt() string {
	return fmt.Sprintf(`INSERT INTO %s.%s (id, vector) VALUES (?, ?)`, s.keyspace, s.table)
}

func (s *Store) annQueryStmt() string {
	return fmt.Sprintf(`SELECT id, vector FROM %s.%s ORDER BY vector ANN OF ? LIMIT ?`, s.keyspace, s.table)
}

// IndexVector validates and issues a parameterized insert of (id, vector).
// Execution failures surface as *StorageError carrying the driver error.
func (s *Store) IndexVector(ctx context.Context, vec vector.Vector, meta search.Metadata) error {
	if err := search.ValidateVector("vector", vec); err != nil {
		return err
	}
	id, err := search.ValidateMetadata(meta)
	if err != nil {
		return err
	}
	if err := s.session.Query(s.insertStmt(), id, []float32(vec)).WithContext(ctx).Exec(); err != nil {
		return &search.StorageError{Op: "insert into " + s.keyspace + "." + s.table, Err: err}
	}
	s.log.V(1).Info("indexed vector", "id", id, "dim", len(vec))
	return nil
}

// IndexVectors indexes the batch in order, stopping at the first failure.
func (s *Store) IndexVectors(ctx context.Context, batch []search.Record) error {
	return search.IndexAll(ctx, s, batch)
}

// QuerySimilar asks the cluster for the topK ANN candidates of the query
// vector, scores each candidate with the configured metric, and returns them
// best-first. By default candidates are re-ranked client-side; with
// WithNativeOrder the store's ordering is kept and only the scores are
// computed. Ties keep the order the store returned.
func (s *Store) QuerySimilar(ctx context.Context, vec vector.Vector, topK int) ([]search.ScoredResult, error) {
	if err := search.ValidateVector("query vector", vec); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return nil, nil
	}

	iter := s.session.Query(s.annQueryStmt(), []float32(vec), topK).WithContext(ctx).Iter()
	var candidates []search.Candidate
	var id string
	var stored []float32
	for iter.Scan(&id, &stored) {
		candidates = append(candidates, search.Candidate{
			ID:     id,
			Vector: vector.Vector(stored).Clone(),
		})
	}
	if err := iter.Close(); err != nil {
		return nil, &search.StorageError{Op: "ann query on " + s.keyspace + "." + s.table, Err: err}
	}

	var results []search.ScoredResult
	if s.nativeOrder {
		results = search.ScoreInOrder(s.metric, vec, candidates, topK)
	} else {
		results = search.Rank(s.metric, vec, candidates, topK)
	}
	s.log.V(1).Info("query complete", "candidates", len(candidates), "returned", len(results), "nativeOrder", s.nativeOrder)
	return results, nil
}

// Close releases the session when the Store owns it (Open); for sessions
// supplied via New it is a no-op.
func (s *Store) Close() error {
	if s.ownsSession && s.session != nil {
		s.session.Close()
	}
	return nil
}

var _ search.Search = (*Store)(nil)
