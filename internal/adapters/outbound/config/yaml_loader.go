package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/i18nverify/i18nverify/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".i18nverify.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .i18nverify.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .i18nverify.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ToolConfig, error) {
	return l.load(filepath.Join(projectPath, fileName), true)
}

// LoadFile reads an explicitly named config file, which must exist.
func (l *YAMLLoader) LoadFile(path string) (domain.ToolConfig, error) {
	return l.load(path, false)
}

func (l *YAMLLoader) load(path string, optional bool) (domain.ToolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ToolConfig{}, err
	}

	// Fields absent from the file keep their defaults.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ToolConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ToolConfig{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}
