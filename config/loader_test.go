package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	tmpDir := t.TempDir()

	// Case 1: Valid settings with partial overrides
	validSettings := `
input: audit.xlsx
outputDir: out
sheetPrefix: "QA-ID-"
presort: false
locator:
  markerColumn: 3
  sectionAnchor: "Detail Section"
tabColors:
  flagged: "CC0000"
`
	validPath := filepath.Join(tmpDir, "valid.yaml")
	if err := os.WriteFile(validPath, []byte(validSettings), 0644); err != nil {
		t.Fatalf("failed to write valid settings: %v", err)
	}

	cfg, err := LoadSettings(validPath)
	if err != nil {
		t.Fatalf("LoadSettings() valid settings error = %v", err)
	}
	if cfg.Locator.MarkerColumn != 3 {
		t.Errorf("MarkerColumn = %d, want 3", cfg.Locator.MarkerColumn)
	}
	if cfg.Locator.SectionAnchor != "Detail Section" {
		t.Errorf("SectionAnchor = %q, want %q", cfg.Locator.SectionAnchor, "Detail Section")
	}
	// Unset fields fall back to defaults
	if cfg.Locator.HeaderAnchor != DefaultHeaderAnchor {
		t.Errorf("HeaderAnchor = %q, want default %q", cfg.Locator.HeaderAnchor, DefaultHeaderAnchor)
	}
	if cfg.TabColors.Flagged != "CC0000" {
		t.Errorf("Flagged = %q, want CC0000", cfg.TabColors.Flagged)
	}
	if cfg.TabColors.Clean != DefaultCleanColor {
		t.Errorf("Clean = %q, want default %q", cfg.TabColors.Clean, DefaultCleanColor)
	}
	if cfg.UsePresort() {
		t.Errorf("UsePresort() = true, want false")
	}

	// Case 2: Invalid settings (bad tab color)
	invalidSettings := `
tabColors:
  flagged: "red"
`
	invalidPath := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(invalidPath, []byte(invalidSettings), 0644); err != nil {
		t.Fatalf("failed to write invalid settings: %v", err)
	}

	_, err = LoadSettings(invalidPath)
	if err == nil {
		t.Errorf("LoadSettings() expected error for invalid settings, got nil")
	} else if !strings.Contains(err.Error(), "RRGGBB") {
		t.Errorf("LoadSettings() error = %v, want error containing 'RRGGBB'", err)
	}

	// Case 3: Missing file
	if _, err := LoadSettings(filepath.Join(tmpDir, "absent.yaml")); err == nil {
		t.Errorf("LoadSettings() expected error for missing file, got nil")
	}
}

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultSettings()) error = %v", err)
	}
	if cfg.Locator.MarkerColumn != DefaultMarkerColumn {
		t.Errorf("MarkerColumn = %d, want %d", cfg.Locator.MarkerColumn, DefaultMarkerColumn)
	}
	if !cfg.UsePresort() {
		t.Errorf("UsePresort() = false, want true by default")
	}
}
