// Package config provides configuration loading and validation for the
// scanner service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// overrides.
type Config struct {
	Port           int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`      // HTTP listen port
	UploadDir      string `json:"upload_dir,omitempty"`                                     // Spool directory for uploads
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty" validate:"omitempty,min=1024"` // Per-request multipart limit
	MaxBatchSize   int    `json:"max_batch_size,omitempty" validate:"omitempty,min=1"`      // Files accepted per upload request
}

// Defaults returns the configuration used when no file or overrides are given.
func Defaults() Config {
	return Config{
		Port:           5000,
		UploadDir:      "uploads",
		MaxUploadBytes: 32 << 20,
		MaxBatchSize:   16,
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.MaxBatchSize == 0 {
		result.MaxBatchSize = defaults.MaxBatchSize
	}

	return result
}

// ApplyEnv overlays supported environment variables onto the configuration.
// PORT and UPLOAD_DIR win over file values when set.
func (c *Config) ApplyEnv() error {
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", raw, err)
		}
		c.Port = port
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		c.UploadDir = dir
	}
	return nil
}
