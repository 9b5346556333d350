package searcher

import (
	"fmt"

	"chessbot/config"
	"chessbot/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// TieBreak picks one arena index from root children that share the best value.
// candidates is never empty and is in move generation order.
type TieBreak func(candidates []int) int

func FirstMatch(candidates []int) int {
	return candidates[0]
}

// RandomMatch picks uniformly with a seedable source, so runs can be replayed.
func RandomMatch(source rand.Source) TieBreak {
	rng := rand.New(source)
	return func(candidates []int) int {
		return candidates[rng.Intn(len(candidates))]
	}
}

// ParseTieBreak maps a config name to a policy.
func ParseTieBreak(name string, seed uint64) (TieBreak, error) {
	switch name {
	case "", config.FirstMatch:
		return FirstMatch, nil
	case config.RandomMatch:
		return RandomMatch(rand.NewSource(seed)), nil
	default:
		return nil, fmt.Errorf("unknown tie break %q: %w", name, config.ErrInvalidConfig)
	}
}

// Select returns the move to play from a backed-up tree.
func (m *Minimax) Select(t *Tree) (game.Move, error) {
	child, _, err := m.selectChild(t)
	if err != nil {
		return game.NullMove, err
	}
	return t.Node(child).Move, nil
}

// selectChild returns the root child to play and the number of candidates it
// was picked from.
func (m *Minimax) selectChild(t *Tree) (int, int, error) {
	root := t.Node(t.Root())
	if root.count == 0 {
		return 0, 0, ErrNoLegalMoves
	}

	candidates := make([]int, 0, root.count)
	for k := 0; k < root.count; k++ {
		child := &t.nodes[root.first+k]
		if !child.Culled && child.Eval >= root.Eval {
			candidates = append(candidates, root.first+k)
		}
	}
	if len(candidates) == 0 {
		log.Warn().Msgf("No root move reaches eval %d, playing first move %s", root.Eval, t.nodes[root.first].Move)
		return root.first, 0, nil
	}
	if root.Eval == game.MaxEval || root.Eval == game.MinEval {
		candidates = fastestMates(t, candidates, root.Distance-1)
	}
	return m.tieBreak(candidates), len(candidates), nil
}

// fastestMates keeps the candidates whose mate score lies distance plies below
// them, the line the backup chose for the root.
func fastestMates(t *Tree, candidates []int, distance int) []int {
	kept := candidates[:0]
	for _, c := range candidates {
		if t.nodes[c].Distance == distance {
			kept = append(kept, c)
		}
	}
	return kept
}

// BestLine follows the first non-culled child matching each node's backed-up
// value down from node i.
func (t *Tree) BestLine(i int) []game.Move {
	var line []game.Move
	for t.nodes[i].count > 0 {
		n := &t.nodes[i]
		next := -1
		for k := 0; k < n.count; k++ {
			child := &t.nodes[n.first+k]
			if !child.Culled && child.Eval == n.Eval && child.Distance == n.Distance-1 {
				next = n.first + k
				break
			}
		}
		if next < 0 {
			break
		}
		line = append(line, t.nodes[next].Move)
		i = next
	}
	return line
}
