package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/archlint/archlint/internal/domain"
)

const fileName = ".archlint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .archlint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .archlint.yaml from rootDir. A missing file yields the default
// config. Unmarshalling happens over the defaults, so a partial file only
// overrides the fields it names. The result is validated before use: a scan
// never starts with an invalid configuration.
func (l *YAMLLoader) Load(rootDir string) (domain.LintConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(rootDir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.LintConfig{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.LintConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.LintConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
