package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cram/internal/genpipeline"
	"cram/internal/project"
	"cram/internal/resolve"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [input ...]",
	Short: "Generate the C++ pair embedding the given files",
	Long: `Generate a header/implementation pair that embeds every given file.
Inputs are files or directories (walked recursively, regular files only).
Without inputs the nearest cram.toml supplies them.`,
	RunE: runGenerate,
}

type generateConfig struct {
	args      []string
	outDir    string
	baseName  string
	namespace string
}

func runGenerate(cmd *cobra.Command, args []string) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := parseUIMode(uiValue)
	if err != nil {
		return err
	}

	cfg, err := resolveGenerateConfig(cmd, args)
	if err != nil {
		return err
	}

	inputs, err := resolve.Expand(cfg.args)
	if err != nil {
		return err
	}

	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	if len(inputs) == 0 {
		warn := color.New(color.FgYellow)
		if !useColor {
			warn.DisableColor()
		}
		warn.Fprintln(os.Stderr, "Warning: no input file to process, will generate empty C++ output!")
	} else if !quiet {
		fmt.Fprintf(os.Stdout, "Ready to process %d file(s).\n", len(inputs))
	}

	if err := ensureOutDir(cfg.outDir, quiet); err != nil {
		return err
	}

	req := genpipeline.Request{
		Inputs:    inputs,
		OutDir:    cfg.outDir,
		BaseName:  cfg.baseName,
		Namespace: cfg.namespace,
	}

	var res genpipeline.Result
	if mode.enabled(quiet) && len(inputs) > 0 {
		res, err = runGenerateWithUI(cmd.Context(), "cram generate", inputNames(inputs), &req)
	} else {
		if !quiet {
			req.Progress = genpipeline.WriterSink{W: os.Stdout}
		}
		res, err = genpipeline.Generate(cmd.Context(), &req)
	}
	printStageTimings(os.Stdout, res.Timings, showTimings)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "generated %s and %s\n", displayPath(res.HeaderPath), displayPath(res.BodyPath))
	}
	return nil
}

// resolveGenerateConfig combines flags, arguments, and the nearest manifest
// into the effective generate settings.
func resolveGenerateConfig(cmd *cobra.Command, args []string) (generateConfig, error) {
	cfg := generateConfig{args: args}
	var err error
	if cfg.outDir, err = cmd.Flags().GetString("out-dir"); err != nil {
		return cfg, err
	}
	if cfg.baseName, err = cmd.Flags().GetString("base-name"); err != nil {
		return cfg, err
	}
	if cfg.namespace, err = cmd.Flags().GetString("namespace"); err != nil {
		return cfg, err
	}

	manifest, found, err := project.Load(".")
	if err != nil {
		return cfg, err
	}
	if found {
		mergeManifest(&cfg, manifest,
			cmd.Flags().Changed("out-dir"),
			cmd.Flags().Changed("base-name"),
			cmd.Flags().Changed("namespace"))
	} else if len(cfg.args) == 0 {
		return cfg, errors.New(noCramTomlMessage)
	}

	if cfg.outDir == "" {
		cfg.outDir = "."
	}
	if cfg.baseName == "" {
		cfg.baseName = "embedded_files"
	}
	return cfg, nil
}

func ensureOutDir(dir string, quiet bool) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%q is not a directory", dir)
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "Using %s as output dir\n", dir)
		}
	case errors.Is(err, os.ErrNotExist):
		if !quiet {
			fmt.Fprintf(os.Stdout, "Creating output dir %s\n", dir)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir %q: %w", dir, err)
		}
	default:
		return err
	}
	return nil
}

func inputNames(inputs []resolve.Input) []string {
	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		names = append(names, in.Name)
	}
	return names
}

func init() {
	generateCmd.Flags().StringP("out-dir", "d", "", "output directory for the generated pair (default \".\")")
	generateCmd.Flags().StringP("base-name", "o", "", "base file name of the generated pair (default \"embedded_files\")")
	generateCmd.Flags().StringP("namespace", "n", "", "C++ namespace wrapped around the registry")
	generateCmd.Flags().String("ui", "auto", "user interface (auto|on|off)")
}
