package cmd

import (
	"fmt"
	"time"

	"chessbot/experiments"

	"github.com/spf13/cobra"
)

func newMatchCmd(opts *options) *cobra.Command {
	var (
		games     int
		maxPlies  int
		budget    time.Duration
		outputDir string
		startFEN  string
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Play the configured matchups and write CSV records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("games") {
				cfg.Match.Games = games
			}
			if cmd.Flags().Changed("max-plies") {
				cfg.Match.MaxPlies = maxPlies
			}
			if cmd.Flags().Changed("budget") {
				cfg.Match.Budget = budget
			}
			if cmd.Flags().Changed("output") {
				cfg.Match.OutputDir = outputDir
			}
			if cmd.Flags().Changed("start-fen") {
				cfg.Match.StartFEN = startFEN
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			dir, err := experiments.Run(cfg.Match)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	cmd.Flags().IntVar(&games, "games", 0, "Games per matchup")
	cmd.Flags().IntVar(&maxPlies, "max-plies", 0, "Plies after which a game is drawn")
	cmd.Flags().DurationVar(&budget, "budget", 0, "Time budget per move")
	cmd.Flags().StringVar(&outputDir, "output", "", "Directory for experiment records")
	cmd.Flags().StringVar(&startFEN, "start-fen", "", "Starting position of every game")
	return cmd
}
