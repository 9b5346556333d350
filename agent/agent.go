package agent

import (
	"fmt"
	"time"

	"chessbot/config"
	"chessbot/game"
	"chessbot/metrics"
	"chessbot/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns a move for the side to move and search metrics (if collected)
	FindMove(board game.Board, budget time.Duration) (game.Move, metrics.SearchMetric, error)
}

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the searcher's best move.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(board game.Board, budget time.Duration) (game.Move, metrics.SearchMetric, error) {
	return a.minimax.Think(board, budget)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board, budget time.Duration) (game.Move, metrics.SearchMetric, error) {
	moves, err := board.LegalMoves()
	if err != nil {
		return game.NullMove, metrics.SearchMetric{}, err
	}
	if len(moves) == 0 {
		return game.NullMove, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	metric := metrics.SearchMetric{Budget: budget, Candidates: len(moves)}
	return moves[a.rng.Intn(len(moves))], metric, nil
}

// FromConfig builds the agent an experiment config describes.
func FromConfig(c config.AgentConfig) (Agent, error) {
	switch c.Kind {
	case config.MinimaxAgent:
		tieBreak, err := searcher.ParseTieBreak(c.TieBreak, c.Seed)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", c.ID, err)
		}
		minimax := searcher.NewMinimax(
			searcher.WithDepth(c.Depth),
			searcher.WithTieBreak(tieBreak),
			searcher.WithMetrics(),
		)
		return NewMinimaxAgent(minimax), nil
	case config.RandomAgent:
		return NewRandomAgent(c.Seed), nil
	default:
		return nil, fmt.Errorf("agent %d has unknown kind %q: %w", c.ID, c.Kind, config.ErrInvalidConfig)
	}
}
