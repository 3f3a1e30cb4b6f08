package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/keeper-tools/keeper/pkg/character"
	"github.com/keeper-tools/keeper/pkg/config"
)

func newCharactersCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "characters",
		Aliases: []string{"chars"},
		Short:   "Browse investigator sheets",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "keeper.yaml", "path to config file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			metas, err := character.List(cfg.CharacterDir)
			if err != nil {
				return err
			}
			if len(metas) == 0 {
				fmt.Printf("no characters found in %s\n", cfg.CharacterDir)
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOCCUPATION\tNATIONALITY\tFILE")
			for _, m := range metas {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, m.Occupation, m.Nationality, filepath.Base(m.Filename))
			}
			return w.Flush()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Display a character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cache, err := character.NewCache(cfg.Dice.CharacterCacheSize)
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.CharacterDir, args[0]+".json")
			char, err := cache.Get(path)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", char.Name)
			if char.Occupation != "" {
				fmt.Printf("Occupation:  %s\n", char.Occupation)
			}
			if char.Nationality != "" {
				fmt.Printf("Nationality: %s\n", char.Nationality)
			}
			if char.Age > 0 {
				fmt.Printf("Age:         %d\n", char.Age)
			}
			printStatBlock("Attributes", char.Attributes)
			printStatBlock("Skills", char.Skills)
			if len(char.Weapons) > 0 {
				fmt.Println("Weapons:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, wp := range char.Weapons {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", wp.Name, wp.Skill, wp.Damage)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func printStatBlock(title string, stats map[string]int) {
	if len(stats) == 0 {
		return
	}
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%s:\n", title)
	for _, name := range names {
		fmt.Printf("  %-20s %d\n", name, stats[name])
	}
}
