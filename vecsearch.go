// Package vecsearch stores text-embedding vectors and retrieves the top-k
// most similar vectors to a query, backed interchangeably by a Cassandra or
// Astra cluster (native ANN), a PostgreSQL database (full scan), or an
// embedded SQLite database (full scan). New builds the backend selected by
// the configuration; all variants implement search.Search.
package vecsearch

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/embedx/vecsearch/cassandra"
	"github.com/embedx/vecsearch/config"
	"github.com/embedx/vecsearch/metric"
	"github.com/embedx/vecsearch/postgres"
	"github.com/embedx/vecsearch/search"
	"github.com/embedx/vecsearch/sqlite"
)

type options struct {
	metric      metric.Metric
	log         logr.Logger
	nativeOrder bool
}

// Option customizes the backend built by New.
type Option func(*options)

// WithMetric overrides the metric named in the configuration.
func WithMetric(m metric.Metric) Option {
	return func(o *options) { o.metric = m }
}

// WithLogger attaches a logger to the backend; the default discards
// everything.
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithNativeOrder makes the cassandra backend trust the cluster's ANN
// ordering instead of re-ranking client-side. Ignored by the full-scan
// backends.
func WithNativeOrder() Option {
	return func(o *options) { o.nativeOrder = true }
}

// New builds the similarity-search backend selected by cfg.Backend. The
// returned backend owns its connection; callers release it with Close.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (search.Search, error) {
	if cfg == nil {
		return nil, fmt.Errorf("vecsearch: config is nil")
	}

	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metric == nil {
		m, err := metric.Parse(cfg.Metric)
		if err != nil {
			return nil, err
		}
		o.metric = m
	}

	switch cfg.Backend {
	case config.BackendCassandra, "astra", "astradb":
		ccfg := cassandra.Config{
			Keyspace:         cfg.Astra.Keyspace,
			Table:            cfg.Astra.Table,
			Username:         cfg.Astra.Username,
			Password:         cfg.Astra.Password,
			SecureBundlePath: cfg.Astra.SecureConnectBundle,
			Hosts:            cfg.Astra.Hosts,
			Port:             cfg.Astra.Port,
		}
		copts := []cassandra.Option{cassandra.WithMetric(o.metric), cassandra.WithLogger(o.log)}
		if o.nativeOrder {
			copts = append(copts, cassandra.WithNativeOrder())
		}
		return cassandra.Open(ccfg, copts...)

	case config.BackendPostgres, "postgresql":
		pcfg := postgres.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			Database: cfg.Postgres.Database,
			Username: cfg.Postgres.Username,
			Password: cfg.Postgres.Password,
			SSLMode:  cfg.Postgres.SSLMode,
			Table:    cfg.Postgres.Table,
		}
		return postgres.Open(ctx, pcfg, postgres.WithMetric(o.metric), postgres.WithLogger(o.log))

	case config.BackendSQLite:
		path := cfg.SQLite.Path
		if path == "" {
			path = ":memory:"
		}
		return sqlite.Open(path, cfg.SQLite.Table, sqlite.WithMetric(o.metric), sqlite.WithLogger(o.log))

	default:
		return nil, fmt.Errorf("vecsearch: unknown backend %q", cfg.Backend)
	}
}
