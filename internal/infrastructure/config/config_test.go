package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	loader := NewLoaderFrom(configPath)

	cfg := DefaultConfig("/data/tasks", "/data")
	cfg.Keybindings.Add = []string{"n"}
	cfg.TUI.Styles.Priority.High = "#FF0000"

	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Storage.TasksPath != "/data/tasks" || loaded.Storage.DataPath != "/data" {
		t.Errorf("storage paths = %+v", loaded.Storage)
	}
	if len(loaded.Keybindings.Add) != 1 || loaded.Keybindings.Add[0] != "n" {
		t.Errorf("Add keybinding = %v, want [n]", loaded.Keybindings.Add)
	}
	if loaded.TUI.Styles.Priority.High != "#FF0000" {
		t.Errorf("priority high color = %q", loaded.TUI.Styles.Priority.High)
	}
}

func TestLoadCreatesDefaultsOnFirstRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := filepath.Join(home, ".config", "taskdeck", "config.yml")
	loader := NewLoaderFrom(configPath)

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("expected the config file written on first run: %v", err)
	}
	if _, err := os.Stat(cfg.Storage.TasksPath); err != nil {
		t.Errorf("expected the tasks directory created on first run: %v", err)
	}
	if len(cfg.Keybindings.Quit) == 0 {
		t.Error("expected default keybindings")
	}
}

func TestDefaultConfigKeybindings(t *testing.T) {
	cfg := DefaultConfig("/tasks", "/data")

	tests := []struct {
		name string
		keys []string
	}{
		{"up", cfg.Keybindings.Up},
		{"down", cfg.Keybindings.Down},
		{"add", cfg.Keybindings.Add},
		{"edit", cfg.Keybindings.Edit},
		{"delete", cfg.Keybindings.Delete},
		{"quit", cfg.Keybindings.Quit},
		{"next field", cfg.Keybindings.NextField},
		{"prev field", cfg.Keybindings.PrevField},
		{"submit", cfg.Keybindings.Submit},
		{"cancel", cfg.Keybindings.Cancel},
	}

	for _, tt := range tests {
		if len(tt.keys) == 0 {
			t.Errorf("expected default keys for %s", tt.name)
		}
	}
}
