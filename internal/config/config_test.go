package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("ACTULI_DB_DRIVER")
	_ = os.Unsetenv("ACTULI_POSTGRES_DSN")
	_ = os.Unsetenv("ACTULI_HTTP_PORT")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.Environment != EnvDevelopment || cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SQLitePath != ":memory:" || cfg.StoreTimeoutSeconds != 5 {
		t.Fatalf("unexpected store defaults: %+v", cfg)
	}
}

func TestResolveDefaults_AutoPicksSqliteWithoutDSN(t *testing.T) {
	cfg := &Config{DBDriver: "auto"}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("want sqlite, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaults_AutoPicksPostgresWithDSN(t *testing.T) {
	cfg := &Config{DBDriver: "auto", PostgresDSN: "postgres://localhost/actuli"}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("want postgres, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaults_PostgresRequiresDSN(t *testing.T) {
	cfg := &Config{DBDriver: "postgres"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for postgres driver without DSN")
	}
}

func TestResolveDefaults_RejectsUnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "oracle"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("ACTULI_DB_DRIVER", "sqlite")
	_ = os.Setenv("ACTULI_SQLITE_PATH", "/tmp/actuli-test.db")
	defer func() {
		_ = os.Unsetenv("ACTULI_DB_DRIVER")
		_ = os.Unsetenv("ACTULI_SQLITE_PATH")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.SQLitePath != "/tmp/actuli-test.db" {
		t.Fatalf("sqlite path env override failed, got %s", cfg.SQLitePath)
	}
}
