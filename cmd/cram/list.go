package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cram/internal/backend/cpp"
	"cram/internal/project"
	"cram/internal/resolve"
)

var listCmd = &cobra.Command{
	Use:   "list [flags] [input ...]",
	Short: "List the files a generate run would embed",
	Long: `Resolve inputs the same way generate does and print one line per
file: byte size, derived identifier, display name. Without inputs the
nearest cram.toml supplies them.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	if len(args) == 0 {
		manifest, found, err := project.Load(".")
		if err != nil {
			return err
		}
		if !found {
			return errors.New(noCramTomlMessage)
		}
		args = manifestInputs(manifest)
	}

	inputs, err := resolve.Expand(args)
	if err != nil {
		return err
	}

	sizes, err := resolve.Sizes(cmd.Context(), inputs, jobs)
	if err != nil {
		return err
	}

	cppInputs := make([]cpp.Input, len(inputs))
	for i, in := range inputs {
		cppInputs[i] = cpp.Input{Path: in.Path, Name: in.Name}
	}
	// The base name never shows up in list output; any valid one works for
	// identifier assignment.
	gctx, err := cpp.NewContext(cppInputs, "embedded_files", "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var total int64
	for i, in := range gctx.Inputs {
		fmt.Fprintf(out, "%10d  %-24s  %s\n", sizes[i], in.Ident, in.Name)
		total += sizes[i]
	}
	fmt.Fprintf(out, "%d file(s), %d byte(s)\n", len(gctx.Inputs), total)
	return nil
}

func init() {
	listCmd.Flags().Int("jobs", 0, "maximum concurrent size lookups (0 = GOMAXPROCS)")
}
