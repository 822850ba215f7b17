package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/corpusdata/corpus-cli/internal/corpus/config"
	"github.com/corpusdata/corpus-cli/internal/corpus/data"
	"github.com/corpusdata/corpus-cli/internal/corpus/util"
)

type pathEntry struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

func buildPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the effective data search path",
		Long: `Show the roots that resource lookups search, in order. Every entry is
already expanded; entries that don't exist on disk are still searched, they
just never match.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			entries := make([]pathEntry, 0, 8)
			for _, root := range data.SearchPath(cfg) {
				_, statErr := os.Stat(root)
				entries = append(entries, pathEntry{Path: root, Exists: statErr == nil})
			}

			switch cfg.Output {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			case "yaml":
				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				defer encoder.Close()
				return encoder.Encode(entries)
			default:
				return outputPathTable(cmd, entries)
			}
		},
	}
}

func outputPathTable(cmd *cobra.Command, entries []pathEntry) error {
	out := cmd.OutOrStdout()
	colorize := util.IsTerminal(out)

	table := tablewriter.NewWriter(out)
	table.Header("#", "ROOT", "STATUS")

	for i, entry := range entries {
		status := "present"
		if !entry.Exists {
			status = "missing"
		}
		if colorize {
			if entry.Exists {
				status = color.GreenString(status)
			} else {
				status = color.RedString(status)
			}
		}
		table.Append(fmt.Sprintf("%d", i+1), entry.Path, status)
	}

	return table.Render()
}
