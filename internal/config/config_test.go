package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Server.Port != 3001 {
		t.Fatalf("port: %d", cfg.Server.Port)
	}
	if cfg.Data.DataDir != "data" {
		t.Fatalf("dataDir: %q", cfg.Data.DataDir)
	}
	if cfg.Import.MaxUploadMB != 10 {
		t.Fatalf("maxUploadMB: %d", cfg.Import.MaxUploadMB)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("NPS_DATA_DIR", "/tmp/npsdata")
	t.Setenv("NPS_DEV", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port override: %d", cfg.Server.Port)
	}
	if cfg.Data.DataDir != "/tmp/npsdata" {
		t.Fatalf("dataDir override: %q", cfg.Data.DataDir)
	}
	if !cfg.Server.DevMode {
		t.Fatalf("dev override not applied")
	}
}

func TestLoad_BadPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3001 {
		t.Fatalf("unparseable PORT should keep the default, got %d", cfg.Server.Port)
	}
}

func TestEnsureDataDir(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Data.DataDir = filepath.Join(t.TempDir(), "nested", "data")

	dir, err := EnsureDataDir(cfg)
	if err != nil {
		t.Fatalf("EnsureDataDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}
