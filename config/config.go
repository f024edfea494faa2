// Copyright © 2025 The ruff authors

// Package config loads linter settings from a project's pyproject.toml.
//
// Settings live under the [tool.ruff] table. Discovery walks up from the
// checked path, the way Python tooling conventionally finds its project
// file. CLI flags always take precedence over file settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Filename is the project file searched for during discovery.
const Filename = "pyproject.toml"

// Config holds the [tool.ruff] settings.
type Config struct {
	// Select restricts checking to the listed rule codes.
	Select []string `toml:"select"`

	// Ignore disables the listed rule codes.
	Ignore []string `toml:"ignore"`

	// Exclude lists glob patterns for files to skip.
	Exclude []string `toml:"exclude"`

	// TargetVersion is the Python version checked against, e.g. "py311".
	// Currently informational.
	TargetVersion string `toml:"target-version"`
}

type pyproject struct {
	Tool struct {
		Ruff Config `toml:"ruff"`
	} `toml:"tool"`
}

// Load reads settings from the pyproject.toml at path. A file without a
// [tool.ruff] table yields a zero Config, not an error.
func Load(path string) (*Config, error) {
	var doc pyproject
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &doc.Tool.Ruff, nil
}

// Discover searches dir and its ancestors for a pyproject.toml and loads
// it. It returns the loaded config and the file path, or (nil, "") when
// no project file exists anywhere up the tree.
func Discover(dir string) (*Config, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}
	for {
		path := filepath.Join(abs, Filename)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err != nil {
				return nil, "", err
			}
			return cfg, path, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, "", nil
		}
		abs = parent
	}
}
