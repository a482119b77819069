package main

import (
	"os"
	"path/filepath"
	"strings"

	"cram/internal/project"
)

const noCramTomlMessage = "no cram.toml found\nplease pass inputs explicitly, e.g.:\n  cram generate assets/ logo.png"

// mergeManifest fills unset generate settings from the manifest. Explicitly
// set flags and command line inputs always win; manifest values only apply
// where nothing was given.
func mergeManifest(cfg *generateConfig, m *project.Manifest, outDirSet, baseNameSet, namespaceSet bool) {
	if m == nil {
		return
	}
	embed := m.Config.Embed
	if len(cfg.args) == 0 {
		cfg.args = manifestInputs(m)
	}
	if !outDirSet && embed.OutDir != "" {
		cfg.outDir = manifestPath(m.Root, embed.OutDir)
	}
	if !baseNameSet && embed.BaseName != "" {
		cfg.baseName = embed.BaseName
	}
	if !namespaceSet && embed.Namespace != "" {
		cfg.namespace = embed.Namespace
	}
}

func manifestInputs(m *project.Manifest) []string {
	inputs := m.Config.Embed.Inputs
	paths := make([]string, 0, len(inputs))
	for _, in := range inputs {
		paths = append(paths, manifestPath(m.Root, in))
	}
	return paths
}

// manifestPath resolves a manifest-relative path and prefers the
// cwd-relative form when the target sits below the working directory.
func manifestPath(root, rel string) string {
	path := filepath.Join(root, filepath.FromSlash(rel))
	if wd, err := os.Getwd(); err == nil {
		if r, relErr := filepath.Rel(wd, path); relErr == nil && !strings.HasPrefix(r, "..") {
			return r
		}
	}
	return path
}
