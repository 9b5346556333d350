package cmd

import (
	"fmt"

	"chessbot/config"
	"chessbot/game"
	"chessbot/searcher"

	"github.com/notnil/chess"
)

// loadBoard plays the UCI moves from fen, or the standard position when fen is
// empty, so positions before the searched one count towards repetition.
func loadBoard(fen string, moves []string) (*game.ChessBoard, error) {
	g := chess.NewGame(chess.UseNotation(chess.UCINotation{}))
	if fen != "" {
		option, err := chess.FEN(fen)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fen %q: %w", fen, err)
		}
		g = chess.NewGame(option, chess.UseNotation(chess.UCINotation{}))
	}
	for _, m := range moves {
		if err := g.MoveStr(m); err != nil {
			return nil, fmt.Errorf("failed to play %s: %w", m, err)
		}
	}
	return game.FromGame(g), nil
}

func newMinimax(search config.SearchConfig) (*searcher.Minimax, error) {
	if err := search.Validate(); err != nil {
		return nil, err
	}
	tieBreak, err := searcher.ParseTieBreak(search.TieBreak, search.Seed)
	if err != nil {
		return nil, err
	}
	return searcher.NewMinimax(
		searcher.WithDepth(search.Depth),
		searcher.WithTieBreak(tieBreak),
		searcher.WithMetrics(),
	), nil
}

func formatEval(eval int) string {
	switch eval {
	case game.MaxEval:
		return "mate"
	case game.MinEval:
		return "-mate"
	default:
		return fmt.Sprintf("%d", eval)
	}
}

func fenArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
