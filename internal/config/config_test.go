package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Backend != BackendSQLite {
		t.Errorf("expected sqlite backend, got %q", cfg.Backend)
	}
	if cfg.DataDir != filepath.Join(home, "data") {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected warn log level, got %q", cfg.LogLevel)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	content := "backend = \"JSON\"\nno_color = true\n"
	if err := os.WriteFile(filepath.Join(home, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Backend != BackendJSON {
		t.Errorf("expected json backend, got %q", cfg.Backend)
	}
	if !cfg.NoColor {
		t.Error("expected no_color to be set")
	}
	if cfg.DataDir != filepath.Join(home, "data") {
		t.Errorf("expected default data dir, got %q", cfg.DataDir)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid toml", "backend = \n"},
		{"unknown backend", "backend = \"redis\"\n"},
		{"empty data dir", "data_dir = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			if err := os.WriteFile(filepath.Join(home, FileName), []byte(tt.content), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadConfig(home); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	cfg := Default(home)
	cfg.LogFile = filepath.Join(home, "splitlog.log")
	cfg.LogToStderr = true
	cfg.CacheSizeMB = 4

	if err := SaveConfig(home, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestHome_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	home, err := Home()
	if err != nil {
		t.Fatalf("Home failed: %v", err)
	}
	if home != dir {
		t.Errorf("expected %s, got %s", dir, home)
	}
}
