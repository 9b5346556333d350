package searcher

import (
	"errors"
	"time"

	"chessbot/game"
	"chessbot/meta"
	"chessbot/metrics"

	"github.com/rs/zerolog/log"
)

var ErrNoLegalMoves = errors.New("no legal moves at root")

type Option func(m *Minimax)

// Minimax is a fixed-depth full-width searcher. It is not safe for concurrent use.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	cull     Culler
	tieBreak TieBreak
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithCuller(cull Culler) Option {
	return func(m *Minimax) {
		if cull != nil {
			m.cull = cull
		}
	}
}

func WithTieBreak(tieBreak TieBreak) Option {
	return func(m *Minimax) {
		if tieBreak != nil {
			m.tieBreak = tieBreak
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.EvaluateMaterial,
		cull:     NeverCull,
		tieBreak: FirstMatch,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search builds the tree for the side to move and backs values up to the root.
// The board is returned to its starting position.
func (m *Minimax) Search(board game.Board) (*Tree, error) {
	t, err := m.build(board)
	if err != nil {
		return nil, err
	}
	m.backup(t, board)
	return t, nil
}

// Think returns the best move for the side to move. The budget is recorded but
// never cuts the search short.
func (m *Minimax) Think(board game.Board, budget time.Duration) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	m.metrics.Start(m.depth, budget)

	t, err := m.Search(board)
	if err != nil {
		return game.NullMove, metrics.SearchMetric{}, err
	}
	root := t.Node(t.Root())
	child, candidates, err := m.selectChild(t)
	if err != nil {
		return game.NullMove, m.metrics.Complete(root.Eval), err
	}
	m.metrics.SetCandidates(candidates)
	metric := m.metrics.Complete(root.Eval)

	move := t.Node(child).Move
	elapsed := time.Since(start)
	if budget > 0 && elapsed > budget {
		log.Warn().Msgf("Depth %d search took %v, over budget %v", m.depth, elapsed, budget)
	}
	log.Debug().Msgf("Found move %s with eval %d from %d nodes in %v", move, root.Eval, t.Len(), elapsed)
	return move, metric, nil
}
