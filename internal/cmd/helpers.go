package cmd

import (
	"errors"
	"fmt"

	"github.com/cameronsjo/rosctl/internal/config"
	"github.com/cameronsjo/rosctl/internal/template"
)

// errTemplateNotFound is returned by commands that need an existing template.
var errTemplateNotFound = errors.New("no template.yml or template.yaml found")

// templateDir returns the directory given on the command line, or the
// configured project root.
func templateDir(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.Root, nil
}

// withTemplate loads the template in dir and passes it to fn.
// It fails with errTemplateNotFound when dir holds no template.
func withTemplate(dir string, fn func(file *template.File) error) error {
	file, found, err := template.Load(dir)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w in %s", errTemplateNotFound, dir)
	}
	return fn(file)
}
