package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corpusdata/corpus-cli/internal/corpus/util"
)

func buildExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <path>...",
		Short: "Expand home-directory markers in paths",
		Long: `Expand a leading ~ or ~user marker in each given path and print the result.

Paths without a leading marker are printed unchanged, as are paths whose
home directory cannot be resolved. A tilde anywhere other than the start of
the path is left alone.`,
		Example: `  corpus expand ~/corpus_data
  corpus expand '~postgres/data' /etc/corpus`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), util.ExpandUser(arg))
			}
			return nil
		},
	}
}
