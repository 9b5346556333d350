package searcher

import "chessbot/game"

type backupFrame struct {
	node   int
	next   int  // Next child to descend into
	folded bool // A child value has replaced the static eval
}

// backup folds leaf evaluations up to the root, mirroring every descent on the
// board. Nodes at even depth are engine plies and maximize; odd depths minimize.
// Culled children are skipped and a node without contributing children keeps
// its static eval. Equal mate scores resolve to the shortest line for the side
// delivering mate and the longest for the side being mated.
func (m *Minimax) backup(t *Tree, board game.Board) {
	line := game.NewLine(board)
	defer line.Rewind()

	stack := []backupFrame{{node: t.Root()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := &t.nodes[top.node]
		if top.next < n.count {
			child := n.first + top.next
			top.next++

			line.Push(t.nodes[child].Move)
			stack = append(stack, backupFrame{node: child})
			continue
		}

		n.State = BackedUp
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			break
		}
		line.Pop()
		if !n.Culled {
			fold(t, &stack[len(stack)-1], n)
		}
	}
}

func fold(t *Tree, parent *backupFrame, child *Node) {
	p := &t.nodes[parent.node]
	distance := child.Distance + 1
	if !parent.folded || better(child.Eval, distance, p.Eval, p.Distance, p.Depth%2 == 0) {
		p.Eval, p.Distance = child.Eval, distance
		parent.folded = true
	}
}

// better reports whether eval reached in distance plies improves on best for
// the maximizing or minimizing side.
func better(eval, distance, best, bestDistance int, maximize bool) bool {
	if eval != best {
		return (eval > best) == maximize
	}
	switch {
	case eval == game.MaxEval && maximize, eval == game.MinEval && !maximize:
		return distance < bestDistance
	case eval == game.MinEval && maximize, eval == game.MaxEval && !maximize:
		return distance > bestDistance
	}
	return false
}
