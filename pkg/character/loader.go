// Package character loads investigator sheets from JSON files and caches
// them with modification-time revalidation.
package character

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keeper-tools/keeper/pkg/models"
)

// Load reads a character sheet from path. The file is decoded as-is; missing
// fields are left at their zero values.
func Load(path string) (*models.Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read character %s: %w", path, err)
	}
	var c models.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse character %s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = nameFromFilename(path)
	}
	return &c, nil
}

// Metadata extracts just the listing fields from a character file without
// keeping the full sheet around.
func Metadata(path string) (*models.CharacterMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read character %s: %w", path, err)
	}
	var meta models.CharacterMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse character %s: %w", path, err)
	}
	meta.Filename = path
	if meta.Name == "" {
		meta.Name = nameFromFilename(path)
	}
	if meta.Occupation == "" {
		meta.Occupation = "Unknown"
	}
	if meta.Nationality == "" {
		meta.Nationality = "Unknown"
	}
	return &meta, nil
}

// List returns metadata for every .json file in dir, sorted by name.
// Unreadable or malformed files are skipped rather than failing the listing.
func List(dir string) ([]*models.CharacterMetadata, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list characters in %s: %w", dir, err)
	}
	var out []*models.CharacterMetadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		meta, err := Metadata(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// nameFromFilename falls back to a capitalized file stem when a sheet has no
// name field.
func nameFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), ".json")
	if stem == "" {
		return stem
	}
	return strings.ToUpper(stem[:1]) + stem[1:]
}
