package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newListTestCmd(out *strings.Builder) *cobra.Command {
	cmd := &cobra.Command{Use: "list"}
	cmd.Flags().Int("jobs", 0, "")
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunListOutputShape(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("a.bin", []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile("logo.png", make([]byte, 10), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out strings.Builder
	if err := runList(newListTestCmd(&out), []string{"a.bin", "logo.png"}); err != nil {
		t.Fatalf("runList: %v", err)
	}

	want := fmt.Sprintf("%10d  %-24s  %s\n", 3, "file_a_bin", "a.bin") +
		fmt.Sprintf("%10d  %-24s  %s\n", 10, "file_logo_png", "logo.png") +
		"2 file(s), 13 byte(s)\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunListDirectory(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.MkdirAll(filepath.Join("assets", "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join("assets", "sub", "x.bin"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out strings.Builder
	if err := runList(newListTestCmd(&out), []string{"assets"}); err != nil {
		t.Fatalf("runList: %v", err)
	}
	if !strings.Contains(out.String(), "assets/sub/x.bin") {
		t.Errorf("output missing the walked file:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "1 file(s), 1 byte(s)\n") {
		t.Errorf("output missing the total line:\n%s", out.String())
	}
}

func TestRunListMissingInput(t *testing.T) {
	chdir(t, t.TempDir())

	var out strings.Builder
	err := runList(newListTestCmd(&out), []string{"nope.bin"})
	if err == nil || !strings.Contains(err.Error(), "can't find file or directory") {
		t.Fatalf("error = %v, want missing input", err)
	}
}
