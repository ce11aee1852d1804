package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/LoadPack/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultContainerWidth = 1200
	cfg.DefaultContainerHeight = 800
	cfg.Theme = "dark"
	cfg.Random.Seed = 7
	cfg.RecentLoadFiles = []string{"/tmp/a.yaml", "/tmp/b.csv"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.Container().Width != 1200 || loaded.Container().Height != 800 {
		t.Errorf("expected 1200x800 container, got %+v", loaded.Container())
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.Random.Seed != 7 {
		t.Errorf("expected seed 7, got %d", loaded.Random.Seed)
	}
	if len(loaded.RecentLoadFiles) != 2 {
		t.Errorf("expected 2 recent files, got %d", len(loaded.RecentLoadFiles))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.DefaultContainerWidth != model.DefaultContainerWidth {
		t.Errorf("expected default width %g, got %g", model.DefaultContainerWidth, cfg.DefaultContainerWidth)
	}
	if !cfg.AllowRotation {
		t.Error("expected rotation allowed by default")
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"light","recent_load_files":null}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme=light, got %s", cfg.Theme)
	}
	if cfg.Random.MaxSide != model.DefaultMaxSide {
		t.Errorf("expected default max side, got %d", cfg.Random.MaxSide)
	}
	if cfg.RecentLoadFiles == nil {
		t.Error("RecentLoadFiles should not be nil after loading")
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config.json, got %s", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ".loadpack" {
		t.Errorf("expected parent dir .loadpack, got %s", filepath.Dir(path))
	}
}
