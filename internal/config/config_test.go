package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("KANBAN_CONFIG", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := filepath.Join(home, ".local", "share", "kanban", "kanban.db")
	if c.Storage.Path != want {
		t.Fatalf("Storage.Path = %q, want %q", c.Storage.Path, want)
	}
	if c.Storage.MigrationsPath != "internal/storage/migrations" {
		t.Fatalf("Storage.MigrationsPath = %q", c.Storage.MigrationsPath)
	}
	if c.UI.Theme != "default" {
		t.Fatalf("UI.Theme = %q, want default", c.UI.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `[storage]
path = "/tmp/boards.db"
migrations_path = "/opt/kanban/migrations"

[ui]
theme = "night"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KANBAN_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Storage.Path != "/tmp/boards.db" {
		t.Fatalf("Storage.Path = %q", c.Storage.Path)
	}
	if c.Storage.MigrationsPath != "/opt/kanban/migrations" {
		t.Fatalf("Storage.MigrationsPath = %q", c.Storage.MigrationsPath)
	}
	if c.UI.Theme != "night" {
		t.Fatalf("UI.Theme = %q", c.UI.Theme)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"night\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KANBAN_CONFIG", path)
	t.Setenv("KANBAN_UI_THEME", "dracula")
	t.Setenv("KANBAN_STORAGE_PATH", "/data/kv.db")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.Theme != "dracula" {
		t.Fatalf("UI.Theme = %q, want env override", c.UI.Theme)
	}
	if c.Storage.Path != "/data/kv.db" {
		t.Fatalf("Storage.Path = %q, want env override", c.Storage.Path)
	}
}
