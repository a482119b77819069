package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cram/internal/version"
)

const versionTagline = "pack bytes, ship source"

// versionFields selects which build metadata lines to render.
type versionFields struct {
	hash    bool
	message bool
	date    bool
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Tagline    string `json:"tagline"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cram build fingerprints",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("message", false, "include git commit message")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	fields, err := readVersionFields(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "pretty":
		renderVersionPretty(out, fields)
		return nil
	case "json":
		return renderVersionJSON(out, fields)
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func readVersionFields(cmd *cobra.Command) (versionFields, error) {
	var fields versionFields
	var err error
	if fields.hash, err = cmd.Flags().GetBool("hash"); err != nil {
		return fields, err
	}
	if fields.message, err = cmd.Flags().GetBool("message"); err != nil {
		return fields, err
	}
	if fields.date, err = cmd.Flags().GetBool("date"); err != nil {
		return fields, err
	}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return fields, err
	}
	if full {
		fields = versionFields{hash: true, message: true, date: true}
	}
	return fields, nil
}

func currentVersion() string {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		return "dev"
	}
	return v
}

func renderVersionPretty(out io.Writer, fields versionFields) {
	fmt.Fprintf(out, "cram %s - %s\n", version.Colorize(currentVersion()), versionTagline)
	if fields.hash {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
	}
	if fields.message {
		fmt.Fprintf(out, "message: %s\n", valueOrUnknown(version.GitMessage))
	}
	if fields.date {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
	}
	if !fields.hash && !fields.message && !fields.date {
		fmt.Fprintln(out, "set --hash, --message, --date, or --full for more build trivia")
	}
}

func renderVersionJSON(out io.Writer, fields versionFields) error {
	payload := versionPayload{
		Tool:    "cram",
		Version: currentVersion(),
		Tagline: versionTagline,
	}
	if fields.hash {
		payload.GitCommit = valueOrUnknown(version.GitCommit)
	}
	if fields.message {
		payload.GitMessage = valueOrUnknown(version.GitMessage)
	}
	if fields.date {
		payload.BuildDate = valueOrUnknown(version.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return s
}
