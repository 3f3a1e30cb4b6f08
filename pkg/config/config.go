// Package config loads keeper configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keeper-tools/keeper/pkg/character"
	"github.com/keeper-tools/keeper/pkg/dice"
)

// Config holds all keeper configuration.
type Config struct {
	CharacterDir string        `yaml:"character_dir"`
	History      HistoryConfig `yaml:"history"`
	Dice         DiceConfig    `yaml:"dice"`
}

// HistoryConfig controls roll-history persistence.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// DiceConfig sizes the engine's memoization caches and the character cache.
type DiceConfig struct {
	ResultCacheSize    int `yaml:"result_cache_size"`
	TreeCacheSize      int `yaml:"tree_cache_size"`
	CharacterCacheSize int `yaml:"character_cache_size"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		CharacterDir: "characters",
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "keeper.db",
		},
		Dice: DiceConfig{
			ResultCacheSize:    dice.DefaultResultCacheSize,
			TreeCacheSize:      dice.DefaultTreeCacheSize,
			CharacterCacheSize: character.DefaultCacheSize,
		},
	}
}

// Load reads a YAML config file and expands environment variables. A missing
// file is not an error; defaults are returned so the CLI works unconfigured.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
