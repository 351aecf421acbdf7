package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes body to a temporary YAML file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// These tests do not run in parallel: cleanenv reads process environment
// variables and the override test sets one.

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
storage_path: "students.db"
http_server:
  address: "localhost:8082"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want %q", cfg.Env, "dev")
	}
	if cfg.StorageDriver != DriverCGO {
		t.Errorf("StorageDriver = %q, want %q", cfg.StorageDriver, DriverCGO)
	}
	if cfg.StoragePath != "students.db" {
		t.Errorf("StoragePath = %q, want %q", cfg.StoragePath, "students.db")
	}
	if cfg.Addr != "localhost:8082" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "localhost:8082")
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Errorf("read/write timeouts = %v/%v, want 10s/10s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.IdleTimeout != time.Minute {
		t.Errorf("IdleTimeout = %v, want 1m", cfg.IdleTimeout)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", DriverPure)
	t.Setenv("HTTP_SERVER_SHUTDOWN_TIMEOUT", "2s")

	path := writeConfig(t, `
env: "prod"
storage_driver: "sqlite3"
storage_path: "students.db"
http_server:
  address: ":8080"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StorageDriver != DriverPure {
		t.Errorf("StorageDriver = %q, want %q", cfg.StorageDriver, DriverPure)
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 2s", cfg.ShutdownTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		path := writeConfig(t, `
env: "dev"
http_server:
  address: ":8080"
`)
		if _, err := Load(path); err == nil {
			t.Fatal("expected error when storage_path is missing")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		path := writeConfig(t, `
env: "dev"
storage_driver: "postgres"
storage_path: "students.db"
http_server:
  address: ":8080"
`)
		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for unknown driver")
		}
		if !strings.Contains(err.Error(), "postgres") {
			t.Errorf("error %q should name the bad driver", err)
		}
	})
}
