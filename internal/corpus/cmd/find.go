package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpusdata/corpus-cli/internal/corpus/config"
	"github.com/corpusdata/corpus-cli/internal/corpus/data"
	"github.com/corpusdata/corpus-cli/internal/corpus/logging"
)

func buildFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <resource>",
		Short: "Locate a resource on the data search path",
		Long: `Locate a resource file or directory on the data search path and print its
full path. Roots are tried in the order reported by 'corpus path'; the first
root containing the resource wins.`,
		Example: `  corpus find tokenizers/punkt/english.params
  corpus find corpora/brown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			roots := data.SearchPath(cfg)
			logging.Debug("searching for resource",
				zap.String("resource", args[0]),
				zap.Strings("roots", roots),
			)

			path, err := data.Find(args[0], roots)
			if err != nil {
				var notFound *data.NotFoundError
				if errors.As(err, &notFound) {
					return exitWithCode(ExitResourceNotFound, err)
				}
				return exitWithCode(ExitInvalidParameters, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
