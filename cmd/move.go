package cmd

import (
	"fmt"

	"chessbot/config"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMoveCmd(opts *options) *cobra.Command {
	var (
		search config.SearchConfig
		moves  []string
	)
	cmd := &cobra.Command{
		Use:   "move [fen]",
		Short: "Print the best move in UCI for the side to move",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(fenArg(args), moves)
			if err != nil {
				return err
			}
			minimax, err := newMinimax(mergeSearch(cmd, opts.cfg.Search, search))
			if err != nil {
				return err
			}

			move, metric, err := minimax.Think(board, opts.cfg.Match.Budget)
			if err != nil {
				return err
			}
			log.Info().Msgf("depth %d searched %d nodes in %v, eval %s", metric.Depth, metric.Nodes, metric.Duration, formatEval(metric.Eval))

			fmt.Fprintln(cmd.OutOrStdout(), move)
			return nil
		},
	}
	searchFlags(cmd, &search)
	cmd.Flags().StringSliceVar(&moves, "moves", nil, "UCI moves played from the fen before searching")
	return cmd
}
