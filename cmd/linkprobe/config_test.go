package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Relay != "" {
		t.Errorf("default relay = %q, want empty", cfg.Relay)
	}
	if cfg.DialTimeout != 10*time.Second {
		t.Errorf("default dial timeout = %v", cfg.DialTimeout)
	}
	if len(cfg.Versions) != 3 || cfg.Versions[0] != 3 {
		t.Errorf("default versions = %v", cfg.Versions)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q", cfg.LogLevel)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.toml")
	content := `
relay = " 198.51.100.7:9001 "
dial_timeout = "3s"
versions = [3, 4]
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Relay != "198.51.100.7:9001" {
		t.Errorf("relay = %q", cfg.Relay)
	}
	if cfg.DialTimeout != 3*time.Second {
		t.Errorf("dial timeout = %v", cfg.DialTimeout)
	}
	if len(cfg.Versions) != 2 || cfg.Versions[1] != 4 {
		t.Errorf("versions = %v", cfg.Versions)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}

	offer := cfg.offer()
	if len(offer) != 2 || offer[0] != 3 || offer[1] != 4 {
		t.Errorf("offer = %v", offer)
	}
}

func TestLoadConfig_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.toml")
	if err := os.WriteFile(path, []byte(`dial_timeout = "soon"`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("an unparsable duration must be rejected")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("a missing config file must be reported")
	}
}
