package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/corpusdata/corpus-cli/internal/corpus/config"
	"github.com/corpusdata/corpus-cli/internal/corpus/logging"
)

var (
	configDir string
	debug     bool
	output    outputFlag
	dataDir   string
)

// BuildRootCmd constructs the root command with all persistent flags and
// subcommands attached. Tests build their own instance to get a clean
// command tree per run.
func BuildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Corpus CLI - locate linguistic data resources on the local search path",
		Long: `Corpus CLI resolves user-relative data paths and locates resource files
(corpora, tokenizer models, stopword lists) on the local data search path.
The search path is assembled from the CORPUS_DATA environment variable, the
configured data directory, and conventional per-platform locations, with
home-directory markers (~ and ~user) expanded in every entry.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init(debug); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				logging.Error("failed to load config", zap.Error(err))
				return err
			}

			logging.Debug("CLI initialized",
				zap.String("config_dir", cfg.ConfigDir),
				zap.String("data_dir", cfg.DataDir),
				zap.String("output", cfg.Output),
				zap.Bool("debug", cfg.Debug),
			)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	addPersistentFlags(cmd)
	bindFlags(cmd)

	cmd.AddCommand(buildExpandCmd())
	cmd.AddCommand(buildFindCmd())
	cmd.AddCommand(buildPathCmd())
	cmd.AddCommand(buildPackagesCmd())
	cmd.AddCommand(buildConfigCmd())
	cmd.AddCommand(buildVersionCmd())

	return cmd
}

var rootCmd = BuildRootCmd()

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configDir, "config-dir", config.GetDefaultConfigDir(), "config directory")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().VarP(&output, "output", "o", "output format (json, yaml, table)")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "extra data directory to search first")
}

func bindFlags(cmd *cobra.Command) {
	viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("output", cmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("data_dir", cmd.PersistentFlags().Lookup("data-dir"))
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	dir := config.GetEffectiveConfigDir(rootCmd.PersistentFlags().Lookup("config-dir"))
	if err := config.SetupViper(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up config: %v\n", err)
		os.Exit(1)
	}

	if debug {
		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Fprintln(os.Stderr, "Using config file:", configFile)
		}
	}
}
