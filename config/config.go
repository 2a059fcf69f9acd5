package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend selector values accepted in Config.Backend.
const (
	BackendCassandra = "cassandra"
	BackendPostgres  = "postgres"
	BackendSQLite    = "sqlite"
)

// Config aggregates every setting the library consumes. Zero values fall
// back to backend defaults.
type Config struct {
	// Backend selects the store variant: cassandra, postgres, or sqlite.
	Backend string `yaml:"backend"`

	// Metric names the scoring strategy (cosine, euclidean, dot); empty
	// means cosine.
	Metric string `yaml:"metric"`

	OpenAIAPIKey string `yaml:"openai_api_key"`

	Astra    AstraConfig    `yaml:"astradb"`
	Postgres PostgresConfig `yaml:"postgresql"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

// AstraConfig holds Cassandra/Astra connection settings. When
// SecureConnectBundle points at an existing file the bundle connection mode
// is used; otherwise hosts/port.
type AstraConfig struct {
	Keyspace            string   `yaml:"keyspace"`
	Table               string   `yaml:"table"`
	Username            string   `yaml:"username"`
	Password            string   `yaml:"password"`
	SecureConnectBundle string   `yaml:"secure_connect_bundle"`
	Hosts               []string `yaml:"hosts"`
	Port                int      `yaml:"port"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	Table    string `yaml:"table"`
}

// SQLiteConfig holds settings for the embedded backend.
type SQLiteConfig struct {
	Path  string `yaml:"path"`
	Table string `yaml:"table"`
}

// Load reads the YAML file at path (skipped when path is empty), then
// applies environment overrides. A .env file in the working directory is
// loaded first when present.
func Load(path string) (*Config, error) {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Backend = envOr("VECSEARCH_BACKEND", c.Backend)
	c.Metric = envOr("VECSEARCH_METRIC", c.Metric)
	c.OpenAIAPIKey = envOr("OPENAI_API_KEY", c.OpenAIAPIKey)

	c.Astra.Keyspace = envOr("ASTRADB_KEYSPACE", c.Astra.Keyspace)
	c.Astra.Table = envOr("ASTRADB_TABLE", c.Astra.Table)
	c.Astra.Username = envOr("ASTRADB_USERNAME", c.Astra.Username)
	c.Astra.Password = envOr("ASTRADB_PASSWORD", c.Astra.Password)
	c.Astra.SecureConnectBundle = envOr("ASTRADB_SECURE_CONNECT_BUNDLE", c.Astra.SecureConnectBundle)
	if hosts := os.Getenv("ASTRADB_HOSTS"); hosts != "" {
		c.Astra.Hosts = splitHosts(hosts)
	}
	c.Astra.Port = envIntOr("ASTRADB_PORT", c.Astra.Port)

	c.Postgres.Host = envOr("POSTGRESQL_HOST", c.Postgres.Host)
	c.Postgres.Port = envIntOr("POSTGRESQL_PORT", c.Postgres.Port)
	c.Postgres.Database = envOr("POSTGRESQL_DATABASE", c.Postgres.Database)
	c.Postgres.Username = envOr("POSTGRESQL_USERNAME", c.Postgres.Username)
	c.Postgres.Password = envOr("POSTGRESQL_PASSWORD", c.Postgres.Password)
	c.Postgres.SSLMode = envOr("POSTGRESQL_SSLMODE", c.Postgres.SSLMode)
	c.Postgres.Table = envOr("POSTGRESQL_TABLE", c.Postgres.Table)

	c.SQLite.Path = envOr("SQLITE_PATH", c.SQLite.Path)
	c.SQLite.Table = envOr("SQLITE_TABLE", c.SQLite.Table)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitHosts(raw string) []string {
	parts := strings.Split(raw, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
