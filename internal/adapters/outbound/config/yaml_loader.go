package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/washline/washline/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".washline.yaml"

// YAMLLoader reads shop configuration from .washline.yaml, with WASHLINE_*
// environment variables taking precedence. A .env file in the same
// directory is honored for development setups.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .washline.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	// Best-effort: a missing .env is the normal case.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, fmt.Errorf("reading %s: %w", fileName, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// applyEnv overlays environment overrides on top of file values.
func applyEnv(cfg *domain.Config) {
	if v := os.Getenv("WASHLINE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WASHLINE_FALLBACK_DIR"); v != "" {
		cfg.FallbackDir = v
	}
	if v := os.Getenv("WASHLINE_STRICT_STATUS"); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			cfg.StrictStatus = strict
		}
	}
}
