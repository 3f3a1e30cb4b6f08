package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/keeper-tools/keeper/pkg/config"
	"github.com/keeper-tools/keeper/pkg/history"
)

func newHistoryCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past rolls",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "keeper.yaml", "path to config file")

	openStore := func() (history.Store, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return history.New(cfg.History.DBPath)
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent rolls",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no rolls recorded yet")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tEXPRESSION\tTOTAL\tROLLS")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%d\t%v\n", humanize.Time(r.CreatedAt), r.Expression, r.Total, r.Rolls)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "maximum rolls to show")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate history per expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summaries, err := store.Summary(cmd.Context())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("no rolls recorded yet")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "EXPRESSION\tCOUNT\tMIN\tMAX\tAVG")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f\n", s.Expression, s.Count, s.Min, s.Max, s.Avg)
			}
			return w.Flush()
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded rolls",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("history cleared")
			return nil
		},
	}

	cmd.AddCommand(listCmd, summaryCmd, clearCmd)
	return cmd
}
