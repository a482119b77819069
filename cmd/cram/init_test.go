package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cram/internal/project"
)

func TestRunInitCreatesProject(t *testing.T) {
	chdir(t, t.TempDir())

	if err := runInit(initCmd, []string{"demo"}); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	manifestPath := filepath.Join("demo", project.ManifestName)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	if !strings.Contains(string(data), "[embed]") {
		t.Errorf("manifest missing [embed]:\n%s", data)
	}
	if st, err := os.Stat(filepath.Join("demo", "assets")); err != nil || !st.IsDir() {
		t.Errorf("assets dir not created: %v", err)
	}

	// The written manifest must load cleanly.
	m, ok, err := project.Load("demo")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if len(m.Config.Embed.Inputs) != 1 || m.Config.Embed.Inputs[0] != "assets" {
		t.Errorf("Inputs = %v, want [assets]", m.Config.Embed.Inputs)
	}
}

func TestRunInitRefusesExisting(t *testing.T) {
	chdir(t, t.TempDir())

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("first runInit: %v", err)
	}
	err := runInit(initCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "already initialized") {
		t.Fatalf("second runInit error = %v, want already initialized", err)
	}
}
