package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultAppliesAllFields(t *testing.T) {
	cfg := Default()
	if cfg.Default.Resolution != 9 {
		t.Fatalf("Default.Resolution = %d, want 9", cfg.Default.Resolution)
	}
	if cfg.Output.Format != "text" {
		t.Fatalf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if cfg.Output.Precision != 6 {
		t.Fatalf("Output.Precision = %d, want 6", cfg.Output.Precision)
	}
	if cfg.Kring.MaxRadius != 50 {
		t.Fatalf("Kring.MaxRadius = %d, want 50", cfg.Kring.MaxRadius)
	}
	if cfg.Earth.RadiusKm != 6371.007180918475 {
		t.Fatalf("Earth.RadiusKm = %v, want 6371.007180918475", cfg.Earth.RadiusKm)
	}
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "h3cli.yaml")
	content := "default:\n  resolution: 7\noutput:\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Default.Resolution != 7 {
		t.Fatalf("Default.Resolution = %d, want 7", cfg.Default.Resolution)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Output.Precision != 6 {
		t.Fatalf("Output.Precision = %d, want default 6", cfg.Output.Precision)
	}
	if cfg.Kring.MaxRadius != 50 {
		t.Fatalf("Kring.MaxRadius = %d, want default 50", cfg.Kring.MaxRadius)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/h3cli.yaml"); err == nil {
		t.Fatalf("Load of a missing file should error")
	}
}
