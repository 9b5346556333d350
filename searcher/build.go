package searcher

import (
	"fmt"

	"chessbot/config"
	"chessbot/game"
)

// Culler reports whether a node should be left unexpanded and excluded from its
// parent's value. The board is at the node's position when it is called.
type Culler func(board game.Board, node *Node) bool

func NeverCull(game.Board, *Node) bool {
	return false
}

type buildFrame struct {
	node int
	next int // Next child to descend into
}

// Build expands a full-width tree of maxDepth plies below the board's position
// without backing values up. A zero maxDepth builds the root alone. The board is
// returned to its starting position.
func Build(board game.Board, maxDepth int, options ...Option) (*Tree, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("max depth %d is negative: %w", maxDepth, config.ErrInvalidConfig)
	}
	m := NewMinimax(options...)
	m.depth = maxDepth
	return m.build(board)
}

func (m *Minimax) build(board game.Board) (*Tree, error) {
	engine := board.Turn()
	t := newTree(m.depth, engine, m.evaluate(board, engine))
	m.metrics.AddNode()

	line := game.NewLine(board)
	defer line.Rewind()

	if err := m.expand(t, line, board, t.Root()); err != nil {
		return nil, err
	}

	stack := []buildFrame{{node: t.Root()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < t.nodes[top.node].count {
			child := t.nodes[top.node].first + top.next
			top.next++

			line.Push(t.nodes[child].Move)
			if err := m.expand(t, line, board, child); err != nil {
				return nil, err
			}
			stack = append(stack, buildFrame{node: child})
			continue
		}

		node := top.node
		stack = stack[:len(stack)-1]
		if node != t.Root() {
			line.Pop()
		}
	}
	return t, nil
}

// expand materializes the children of node i. The board must be at node i.
func (m *Minimax) expand(t *Tree, line *game.Line, board game.Board, i int) error {
	defer func() { t.nodes[i].State = Built }()

	n := &t.nodes[i]
	if n.Depth >= t.maxDepth {
		m.metrics.AddLeaf()
		return nil
	}
	if i != t.Root() && m.cull(board, n) {
		n.Culled = true
		m.metrics.AddCull()
		return nil
	}

	moves, err := board.LegalMoves()
	if err != nil {
		return fmt.Errorf("failed to expand node at depth %d: %w", n.Depth, err)
	}
	if len(moves) > game.MaxMoves {
		return fmt.Errorf("%d moves at depth %d: %w", len(moves), n.Depth, game.ErrMoveBufferExceeded)
	}
	if len(moves) == 0 {
		m.metrics.AddLeaf()
		return nil
	}

	evals := make([]int, len(moves))
	for k, move := range moves {
		line.Push(move)
		evals[k] = m.evaluate(board, t.engine)
		line.Pop()
	}
	t.addChildren(i, moves, evals)
	for range moves {
		m.metrics.AddNode()
	}
	return nil
}
