package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cram/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a cram project",
	Long: `Initialize a cram project by creating a project manifest (cram.toml)
and an empty assets directory. If [path] is omitted, initializes the current
directory. If a non-existing path is provided, the directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(defaultManifest()), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	assetsPath := filepath.Join(target, "assets")
	createdAssets := false
	if _, err := os.Stat(assetsPath); errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(assetsPath, 0o755); err != nil {
			return fmt.Errorf("failed to create assets dir: %w", err)
		}
		createdAssets = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized cram project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if createdAssets {
		fmt.Fprintf(os.Stdout, "  - assets/\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - assets/ (existing)\n")
	}
	return nil
}

func defaultManifest() string {
	return `# cram project manifest
[embed]
# Files and directories to embed, relative to this file.
inputs = ["assets"]
# The generated pair goes here (created on demand).
out_dir = "generated"
# Base file name of the pair: <base_name>.h and <base_name>.cpp.
base_name = "embedded_files"
# Optional C++ namespace wrapped around the registry.
namespace = ""
`
}
