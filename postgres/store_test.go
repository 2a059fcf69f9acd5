package postgres

import (
	"strings"
	"testing"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		Database: "embeddings",
		Username: "svc",
		Password: "secret",
	}
	dsn := cfg.dsn()

	for _, want := range []string{"host=db.internal", "port=5433", "dbname=embeddings", "user=svc", "password=secret", "sslmode=disable"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn %q missing %q", dsn, want)
		}
	}
}

func TestConfig_DSNOmitsEmptyParts(t *testing.T) {
	cfg := Config{Host: "localhost", Database: "embeddings", SSLMode: "require"}
	dsn := cfg.dsn()

	if strings.Contains(dsn, "user=") || strings.Contains(dsn, "password=") || strings.Contains(dsn, "port=") {
		t.Fatalf("dsn %q contains empty credentials", dsn)
	}
	if !strings.Contains(dsn, "sslmode=require") {
		t.Fatalf("dsn %q missing configured sslmode", dsn)
	}
}

func TestNew_NilDB(t *testing.T) {
	if _, err := New(nil, ""); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
