package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keeper-tools/keeper/pkg/config"
	"github.com/keeper-tools/keeper/pkg/dice"
	"github.com/keeper-tools/keeper/pkg/history"
	"github.com/keeper-tools/keeper/pkg/models"
)

func newRollCmd() *cobra.Command {
	var (
		configPath string
		seed       int64
		times      int
		breakdown  bool
		noHistory  bool
	)

	cmd := &cobra.Command{
		Use:   "roll EXPRESSION",
		Short: "Roll a dice expression, e.g. '3D6' or '(2D6+6)*5'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			roller, err := dice.NewRoller(cfg.Dice.ResultCacheSize, cfg.Dice.TreeCacheSize)
			if err != nil {
				return err
			}

			store := openHistory(cfg, noHistory)
			if store != nil {
				defer func() { _ = store.Close() }()
			}

			deterministic := cmd.Flags().Changed("seed")
			for i := 0; i < times; i++ {
				var res *dice.Result
				if deterministic {
					res, err = roller.RollSeeded(expr, seed)
				} else {
					res, err = roller.Roll(expr)
				}
				if err != nil {
					return err
				}

				printResult(res, breakdown)
				recordRoll(cmd.Context(), store, res, seed, deterministic)
			}

			stats := roller.Stats()
			logger.Debug("cache stats",
				"result_hits", stats.Results.Hits,
				"result_misses", stats.Results.Misses,
				"tree_hits", stats.Trees.Hits,
				"tree_misses", stats.Trees.Misses,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "keeper.yaml", "path to config file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "roll deterministically with this seed")
	cmd.Flags().IntVar(&times, "times", 1, "number of rolls")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "show individual die results")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record rolls")
	return cmd
}

// openHistory returns a store for recording rolls, or nil when history is
// disabled or the database cannot be opened. A broken history db must not
// block rolling, so open failures only warn. The nil is untyped; recordRoll
// relies on that.
func openHistory(cfg *config.Config, disabled bool) history.Store {
	if !cfg.History.Enabled || disabled {
		return nil
	}
	s, err := history.New(cfg.History.DBPath)
	if err != nil {
		logger.Warn("roll history unavailable", "err", err)
		return nil
	}
	return s
}

func printResult(res *dice.Result, breakdown bool) {
	if !breakdown || len(res.Groups) == 0 {
		fmt.Println(res.Total)
		return
	}
	parts := make([]string, 0, len(res.Groups))
	for _, g := range res.Groups {
		rolls := make([]string, len(g.Rolls))
		for i, v := range g.Rolls {
			rolls[i] = fmt.Sprint(v)
		}
		parts = append(parts, fmt.Sprintf("%dD%d: %s", len(g.Rolls), g.Sides, strings.Join(rolls, " ")))
	}
	fmt.Printf("%d  (%s)\n", res.Total, strings.Join(parts, ", "))
}

func recordRoll(ctx context.Context, store history.Store, res *dice.Result, seed int64, deterministic bool) {
	if store == nil {
		return
	}
	rec := models.RollRecord{
		Expression:    dice.Normalize(res.Expression),
		Total:         res.Total,
		Rolls:         res.Rolls(),
		Deterministic: deterministic,
	}
	if deterministic {
		rec.Seed = seed
	}
	if err := store.Record(ctx, rec); err != nil {
		logger.Warn("failed to record roll", "err", err)
	}
}
