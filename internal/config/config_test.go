package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `columns:
  date: ["Posted"]
  amount: ["Value", "Gross"]
currency: EUR
source: etsy-xlsx
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("expected currency EUR, got %q", cfg.Currency)
	}
	if cfg.Source != "etsy-xlsx" {
		t.Errorf("expected source etsy-xlsx, got %q", cfg.Source)
	}
	if len(cfg.Columns["amount"]) != 2 {
		t.Errorf("expected 2 amount variants, got %v", cfg.Columns["amount"])
	}
}

func TestLoadRejectsUnknownColumnField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `columns:
  orderTotal: ["Total"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown column field")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := &Config{Currency: "GBP"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Currency != "GBP" {
		t.Errorf("expected GBP, got %q", loaded.Currency)
	}
}
