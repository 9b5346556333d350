package cmd

import (
	"fmt"
	"strings"

	"chessbot/config"
	"chessbot/game"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	var (
		search config.SearchConfig
		moves  []string
	)
	cmd := &cobra.Command{
		Use:   "analyze [fen]",
		Short: "Print the backed-up evaluation and best line of every root move",
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

			tree, err := minimax.Search(board)
			if err != nil {
				return err
			}
			best, err := minimax.Select(tree)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			root := tree.Node(tree.Root())
			fmt.Fprintf(out, "%s to move, depth %d, %d nodes, eval %s, best %s\n",
				tree.Engine(), tree.MaxDepth(), tree.Len(), formatEval(root.Eval), best)
			for k := 0; k < tree.NumChildren(tree.Root()); k++ {
				i := tree.Child(tree.Root(), k)
				child := tree.Node(i)
				line := append([]game.Move{child.Move}, tree.BestLine(i)...)
				fmt.Fprintf(out, "%-6s %8s  %s\n", child.Move, formatEval(child.Eval), joinMoves(line))
			}
			return nil
		},
	}
	searchFlags(cmd, &search)
	cmd.Flags().StringSliceVar(&moves, "moves", nil, "UCI moves played from the fen before searching")
	return cmd
}

func joinMoves(moves []game.Move) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return strings.Join(names, " ")
}
