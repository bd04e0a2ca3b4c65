package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HEARTS_TEST_VALUE", "set")
	if got := GetEnv("HEARTS_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("HEARTS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HEARTS_TEST_INT", "8080")
	t.Setenv("HEARTS_TEST_BAD", "eighty")
	if got := GetEnvInt("HEARTS_TEST_INT", 1); got != 8080 {
		t.Errorf("GetEnvInt = %d, want 8080", got)
	}
	if got := GetEnvInt("HEARTS_TEST_BAD", 1); got != 1 {
		t.Errorf("GetEnvInt(bad) = %d, want fallback", got)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hearts.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadServerConfigDefaults(t *testing.T) {
	cfg, err := LoadServerConfig("")
	if err != nil {
		t.Fatalf("LoadServerConfig() error = %v", err)
	}
	if cfg != DefaultServerConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadServerConfigFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
host: 127.0.0.1
port: "2300"
host_key: /tmp/key
idle_timeout: 30m
`)
	t.Setenv("SSH_PORT", "2400")

	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("LoadServerConfig() error = %v", err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("host = %q, want file value", cfg.Host)
	}
	if cfg.Port != "2400" {
		t.Errorf("port = %q, want env override", cfg.Port)
	}
	if cfg.HostKeyPath != "/tmp/key" {
		t.Errorf("host key = %q", cfg.HostKeyPath)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("idle timeout = %s, want 30m", cfg.IdleTimeout)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("log level = %q, want default", cfg.LogLevel)
	}
}

func TestLoadServerConfigErrors(t *testing.T) {
	if _, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := writeConfig(t, "port: [1, 2")
	_, err := LoadServerConfig(bad)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("malformed yaml error = %v", err)
	}

	negative := writeConfig(t, "idle_timeout: -1s")
	if _, err := LoadServerConfig(negative); err == nil {
		t.Error("negative idle timeout should fail validation")
	}
}

func TestLoadServerConfigIdleTimeoutEnv(t *testing.T) {
	t.Setenv("SSH_IDLE_TIMEOUT", "90")
	cfg, err := LoadServerConfig("")
	if err != nil {
		t.Fatalf("LoadServerConfig() error = %v", err)
	}
	if cfg.IdleTimeout != 90*time.Second {
		t.Errorf("idle timeout = %s, want 90s", cfg.IdleTimeout)
	}

	t.Setenv("SSH_IDLE_TIMEOUT", "-5")
	if _, err := LoadServerConfig(""); err == nil {
		t.Error("negative SSH_IDLE_TIMEOUT should fail validation")
	}
}
