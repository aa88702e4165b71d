package rscript

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigAppliesToEngine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rscript.yaml")
	const doc = `
arrays_enabled: false
objects_enabled: true
user_functions_enabled: true
integer_width: 32
unchecked_arithmetic: true
sync_mode: false
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Arrays || !cfg.Objects || !cfg.UserFunctions || cfg.IntegerWidth != 32 || !cfg.UncheckedArithmetic {
		t.Fatalf("unexpected Config: %+v", cfg)
	}

	e := New(cfg.Options()...)

	if _, err := e.Eval("[1, 2, 3]"); err == nil {
		t.Fatalf("expected array literals to be disabled per config")
	}

	v, err := e.Eval("2147483647 + 1")
	if err != nil {
		t.Fatalf("unexpected error with unchecked_arithmetic: %v", err)
	}
	if got, _ := v.AsInt(); got != -2147483648 {
		t.Fatalf("got %d, want wrapped MinInt32", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error reading a missing config file")
	}
}
