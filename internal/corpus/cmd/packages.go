package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/corpusdata/corpus-cli/internal/corpus/config"
	"github.com/corpusdata/corpus-cli/internal/corpus/data"
)

func buildPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "packages",
		Aliases: []string{"pkgs"},
		Short:   "List installed data packages",
		Long: `List data packages recorded in the index files (index.yaml) of the search
path roots. When the same package appears under several roots, the highest
version is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			packages, err := data.ListPackages(data.SearchPath(cfg))
			if err != nil {
				return fmt.Errorf("failed to list packages: %w", err)
			}

			switch cfg.Output {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(packages)
			case "yaml":
				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				defer encoder.Close()
				return encoder.Encode(packages)
			default:
				return outputPackagesTable(cmd, packages)
			}
		},
	}
}

func outputPackagesTable(cmd *cobra.Command, packages []data.Package) error {
	if len(packages) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No data packages installed")
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("ID", "VERSION", "NAME", "ROOT")

	for _, pkg := range packages {
		table.Append(pkg.ID, pkg.Version, pkg.Name, pkg.Root)
	}

	return table.Render()
}
