package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml
// with environment overrides.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Import ImportConfig `toml:"import"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig configures where the dataset snapshot lives.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ImportConfig bounds uploads.
type ImportConfig struct {
	MaxUploadMB int `toml:"max_upload_mb"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    3001,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Import: ImportConfig{
			MaxUploadMB: 10,
		},
	}
}

// Load reads config.toml from the working directory if present, then
// applies .env / environment overrides (PORT, NPS_DATA_DIR, NPS_DEV).
// A missing config file is not an error; defaults apply.
func Load() (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile("config.toml")
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config.toml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config.toml: %w", err)
	}

	// .env is optional; environment always wins over the file.
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("NPS_DATA_DIR"); v != "" {
		cfg.Data.DataDir = v
	}
	if v := os.Getenv("NPS_DEV"); v == "1" || v == "true" {
		cfg.Server.DevMode = true
	}

	return cfg, nil
}

// EnsureDataDir creates the data directory if needed and returns its
// absolute path.
func EnsureDataDir(cfg *AppConfig) (string, error) {
	dir := cfg.Data.DataDir
	if dir == "" {
		dir = "data"
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return abs, nil
}
