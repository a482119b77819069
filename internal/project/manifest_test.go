package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): %v", path, err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, "[embed]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	got, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatalf("Find did not locate manifest")
	}
	if got != path {
		t.Errorf("Find = %q, want %q", got, path)
	}
}

func TestFindNotFound(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Fatalf("Find located a manifest in an empty tree")
	}
}

func TestLoadParsesEmbed(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[embed]
inputs = ["assets", "extra/logo.png"]
out_dir = "generated"
base_name = "embedded_files"
namespace = "assets"
`)

	m, ok, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatalf("Load did not locate manifest")
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
	cfg := m.Config.Embed
	if len(cfg.Inputs) != 2 || cfg.Inputs[0] != "assets" || cfg.Inputs[1] != "extra/logo.png" {
		t.Errorf("Inputs = %v", cfg.Inputs)
	}
	if cfg.OutDir != "generated" {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, "generated")
	}
	if cfg.BaseName != "embedded_files" {
		t.Errorf("BaseName = %q, want %q", cfg.BaseName, "embedded_files")
	}
	if cfg.Namespace != "assets" {
		t.Errorf("Namespace = %q, want %q", cfg.Namespace, "assets")
	}
}

func TestLoadMissingEmbedTable(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"x\"\n")

	_, ok, err := Load(root)
	if !ok {
		t.Fatalf("Load did not locate manifest")
	}
	if err == nil || !strings.Contains(err.Error(), "missing [embed]") {
		t.Fatalf("Load error = %v, want missing [embed]", err)
	}
}

func TestLoadBadTOML(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[embed\n")

	_, _, err := Load(root)
	if err == nil || !strings.Contains(err.Error(), "failed to parse TOML") {
		t.Fatalf("Load error = %v, want parse failure", err)
	}
}

func TestLoadEmptyEmbedAllowed(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[embed]\n")

	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if len(m.Config.Embed.Inputs) != 0 {
		t.Errorf("Inputs = %v, want empty", m.Config.Embed.Inputs)
	}
}
