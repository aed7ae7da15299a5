package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/i18nverify/i18nverify/internal/domain"
)

// Environment variables that override values from .i18nverify.yaml.
const (
	EnvI18nDir    = "I18NVERIFY_I18N_DIR"
	EnvPackageDir = "I18NVERIFY_PACKAGE_DIR"
	EnvLang       = "I18NVERIFY_LANG"
)

// LoadDotEnv loads projectPath/.env into the process environment. A missing
// .env is not an error; variables already set are not overwritten.
func LoadDotEnv(projectPath string) error {
	err := godotenv.Load(filepath.Join(projectPath, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ApplyEnv overlays environment values on cfg. lookup is usually os.LookupEnv.
func ApplyEnv(cfg domain.ToolConfig, lookup func(string) (string, bool)) domain.ToolConfig {
	if v, ok := lookup(EnvI18nDir); ok && v != "" {
		cfg.I18nDir = v
	}
	if v, ok := lookup(EnvPackageDir); ok && v != "" {
		cfg.PackageDir = v
	}
	if v, ok := lookup(EnvLang); ok && v != "" {
		cfg.Lang = v
	}
	return cfg
}
