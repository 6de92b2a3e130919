package database

import (
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestDSN(t *testing.T) {
	dsn := DSN("app", "s3cret", "db.local", "3306", "cinema")
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		t.Fatalf("parse dsn %q: %v", dsn, err)
	}
	if cfg.User != "app" || cfg.Passwd != "s3cret" || cfg.Addr != "db.local:3306" || cfg.DBName != "cinema" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !cfg.ParseTime {
		t.Fatalf("expected parseTime enabled")
	}
	if !strings.Contains(dsn, "charset=utf8mb4") {
		t.Fatalf("expected utf8mb4 charset in %q", dsn)
	}
}
