package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.CharacterDir != "characters" {
		t.Errorf("expected characters dir, got %s", cfg.CharacterDir)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if cfg.Dice.ResultCacheSize != 64 || cfg.Dice.TreeCacheSize != 128 {
		t.Errorf("unexpected cache sizes: %+v", cfg.Dice)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("KEEPER_DB_DIR", "/var/lib/keeper")

	content := `
character_dir: "sheets"
history:
  enabled: false
  db_path: "${KEEPER_DB_DIR}/rolls.db"
dice:
  result_cache_size: 8
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CharacterDir != "sheets" {
		t.Errorf("CharacterDir = %s, want sheets", cfg.CharacterDir)
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled")
	}
	if cfg.History.DBPath != "/var/lib/keeper/rolls.db" {
		t.Errorf("env not expanded: %s", cfg.History.DBPath)
	}
	if cfg.Dice.ResultCacheSize != 8 {
		t.Errorf("ResultCacheSize = %d, want 8", cfg.Dice.ResultCacheSize)
	}
	// Unset fields keep defaults.
	if cfg.Dice.TreeCacheSize != 128 {
		t.Errorf("TreeCacheSize = %d, want default 128", cfg.Dice.TreeCacheSize)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CharacterDir != "characters" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("history: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
