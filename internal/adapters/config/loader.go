// Package config provides the configuration loader for latt.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/latt/internal/core/domain"
	"go.trai.ch/latt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds latt.yaml starting from cwd and walking up, parses it and
// applies defaults to omitted fields. Roots are resolved to absolute paths
// relative to the config file's directory.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // Path found by upward search from cwd
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file LattFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return l.toConfig(file, filepath.Dir(configPath)), nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(domain.ErrConfigNotFound, err.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.LattFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no "+domain.LattFileName+" in this or any parent directory"), "cwd", cwd)
}

func (l *Loader) toConfig(file LattFile, baseDir string) domain.Config {
	cfg := domain.DefaultConfig()

	for _, root := range file.Roots {
		if !filepath.IsAbs(root) {
			root = filepath.Join(baseDir, root)
		}
		cfg.Roots = append(cfg.Roots, filepath.Clean(root))
	}

	if len(file.Extensions) > 0 {
		cfg.Extensions = make(map[string]struct{}, len(file.Extensions))
		for _, ext := range file.Extensions {
			cfg.Extensions[strings.TrimPrefix(ext, ".")] = struct{}{}
		}
	}

	if file.DebounceWindowMS > 0 {
		cfg.DebounceWindow = time.Duration(file.DebounceWindowMS) * time.Millisecond
	}

	if file.CacheDir != "" {
		dir := file.CacheDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		cfg.CacheDir = filepath.Clean(dir)
	}

	return cfg
}
