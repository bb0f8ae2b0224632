package config

import (
	"os"
	"path/filepath"
	"testing"

	"vnfe/pkg/ime"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vnfe.ini")
	contents := "[input]\nmethod = simple-telex\n\n[spelling]\nrestore_invalid = true\n\n[output]\nform = nfd\n\n[macro]\npath = macros.tsv\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Method != "simple-telex" {
		t.Fatalf("expected simple-telex, got %q", cfg.Method)
	}
	if !cfg.RestoreInvalid {
		t.Fatal("expected restore_invalid to be set")
	}
	if cfg.Form != ime.FormNFD {
		t.Fatalf("expected nfd, got %v", cfg.Form)
	}
	if want := filepath.Join(dir, "macros.tsv"); cfg.MacroPath != want {
		t.Fatalf("expected macro path %q, got %q", want, cfg.MacroPath)
	}
}

func TestLoadRejectsDirectoryAndBadForm(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for a directory")
	}

	path := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(path, []byte("[output]\nform = nfkd\n"), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unknown output form")
	}
}
