// Package config handles project discovery and configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"

	"github.com/cameronsjo/rosctl/internal/template"
)

// ErrRootNotFound indicates no directory above the start holds a template.
var ErrRootNotFound = errors.New("project root not found (no template.yml or template.yaml)")

var validate = validator.New()

// Settings are the environment overrides understood by rosctl.
type Settings struct {
	// Dir pins the project directory instead of searching for it.
	Dir string `env:"ROSCTL_DIR"`

	// UploadURL is the default upload endpoint.
	UploadURL string `env:"ROSCTL_UPLOAD_URL" validate:"omitempty,url"`

	// NoProgress disables the upload progress bar even on a terminal.
	NoProgress bool `env:"ROSCTL_NO_PROGRESS"`
}

// Config holds the rosctl project configuration.
type Config struct {
	// Root is the project directory holding the template file.
	Root string

	// UploadURL is the default upload endpoint, possibly empty.
	UploadURL string

	// NoProgress disables the upload progress bar.
	NoProgress bool
}

// FindRoot searches upward from the current directory for the project root.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return FindRootFrom(dir)
}

// FindRootFrom searches upward from dir for a directory containing
// template.yml or template.yaml.
func FindRootFrom(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}

	for {
		for _, name := range template.FileNames {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// Load reads the environment and resolves the project root from the
// current directory.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return LoadFrom(es, cwd)
}

// LoadFrom builds a Config from es, searching upward from cwd unless
// ROSCTL_DIR is set. When no template is found the root falls back to cwd.
func LoadFrom(es env.EnvSet, cwd string) (*Config, error) {
	var s Settings
	if err := env.Unmarshal(es, &s); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	cfg := &Config{
		UploadURL:  s.UploadURL,
		NoProgress: s.NoProgress,
	}

	if s.Dir != "" {
		root, err := filepath.Abs(s.Dir)
		if err != nil {
			return nil, fmt.Errorf("resolve ROSCTL_DIR: %w", err)
		}
		cfg.Root = root
		return cfg, nil
	}

	root, err := FindRootFrom(cwd)
	switch {
	case err == nil:
		cfg.Root = root
	case errors.Is(err, ErrRootNotFound):
		cfg.Root, err = filepath.Abs(cwd)
		if err != nil {
			return nil, fmt.Errorf("resolve directory: %w", err)
		}
	default:
		return nil, err
	}

	return cfg, nil
}
