// Package project locates and loads the cram.toml project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file commands search for when no inputs are given.
const ManifestName = "cram.toml"

// Manifest is a loaded cram.toml together with its location. Root is the
// directory holding the file; relative paths in the config resolve against
// it.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the cram.toml schema.
type Config struct {
	Embed EmbedConfig `toml:"embed"`
}

// EmbedConfig holds the generation settings from the [embed] table.
type EmbedConfig struct {
	Inputs    []string `toml:"inputs"`
	OutDir    string   `toml:"out_dir"`
	BaseName  string   `toml:"base_name"`
	Namespace string   `toml:"namespace"`
}

// Find walks up from startDir to locate the nearest cram.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the nearest manifest above startDir. The second
// return reports whether a manifest was found at all.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("embed") {
		return Config{}, fmt.Errorf("%s: missing [embed]", path)
	}
	return cfg, nil
}
