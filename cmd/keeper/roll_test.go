package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/keeper-tools/keeper/pkg/config"
	"github.com/keeper-tools/keeper/pkg/dice"
)

func TestOpenHistoryUnavailable(t *testing.T) {
	// The database path points into a directory that does not exist, so
	// opening the store fails. The helper must return an untyped nil, not a
	// nil *SQLiteStore wrapped in the interface, or recordRoll's guard
	// would miss it.
	cfg := config.Default()
	cfg.History.DBPath = filepath.Join(t.TempDir(), "no", "such", "dir", "rolls.db")

	store := openHistory(cfg, false)
	if store != nil {
		t.Fatalf("openHistory should return nil when the db cannot be opened, got %#v", store)
	}

	// Rolling must still work: recording against the nil store is a no-op.
	res, err := dice.Roll("3D6", dice.NewScriptedSource(2, 5, 6))
	if err != nil {
		t.Fatal(err)
	}
	recordRoll(context.Background(), store, res, 0, false)
}

func TestOpenHistoryDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.History.DBPath = filepath.Join(t.TempDir(), "rolls.db")

	if store := openHistory(cfg, true); store != nil {
		t.Error("openHistory should return nil when recording is disabled")
	}

	cfg.History.Enabled = false
	if store := openHistory(cfg, false); store != nil {
		t.Error("openHistory should return nil when history is off in config")
	}
}

func TestOpenHistorySuccess(t *testing.T) {
	cfg := config.Default()
	cfg.History.DBPath = filepath.Join(t.TempDir(), "rolls.db")

	store := openHistory(cfg, false)
	if store == nil {
		t.Fatal("openHistory should open a store at a writable path")
	}
	defer func() { _ = store.Close() }()

	res, err := dice.Roll("1D20+5", dice.NewScriptedSource(15))
	if err != nil {
		t.Fatal(err)
	}
	recordRoll(context.Background(), store, res, 0, false)

	records, err := store.Recent(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Total != 20 {
		t.Errorf("recorded roll not found: %+v", records)
	}
}
