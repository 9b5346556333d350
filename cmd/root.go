package cmd

import (
	"fmt"
	"os"
	"time"

	"chessbot/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

// NewRootCmd wires the chessbot commands. Flags override values from the
// config file, which override the defaults.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "chessbot",
		Short:         "Fixed-depth minimax chess engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if err := setupLogger(cfg.LogLevel); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newMoveCmd(opts), newAnalyzeCmd(opts), newMatchCmd(opts))
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	return nil
}

// searchFlags binds the search overrides shared by move and analyze.
func searchFlags(cmd *cobra.Command, search *config.SearchConfig) {
	cmd.Flags().IntVar(&search.Depth, "depth", 0, "Search depth in plies (default from config)")
	cmd.Flags().StringVar(&search.TieBreak, "tie-break", "", "Tie break among equal moves: first or random")
	cmd.Flags().Uint64Var(&search.Seed, "seed", 0, "Seed for the random tie break")
}

// mergeSearch applies the flags that were set over the config's search section.
func mergeSearch(cmd *cobra.Command, base, flags config.SearchConfig) config.SearchConfig {
	if cmd.Flags().Changed("depth") {
		base.Depth = flags.Depth
	}
	if cmd.Flags().Changed("tie-break") {
		base.TieBreak = flags.TieBreak
	}
	if cmd.Flags().Changed("seed") {
		base.Seed = flags.Seed
	}
	return base
}
