package searcher

import "chessbot/game"

type State int

const (
	Unbuilt State = iota
	Built         // Children materialized, possibly none
	BackedUp      // Eval holds the minimax value of the subtree
)

func (s State) String() string {
	switch s {
	case Built:
		return "built"
	case BackedUp:
		return "backed up"
	default:
		return "unbuilt"
	}
}

const noParent = -1

// Node is a position reached from its parent by Move. Eval starts as the static
// evaluation of that position and is replaced by the backed-up value.
type Node struct {
	Move     game.Move
	Depth    int
	Eval     int
	Culled   bool
	State    State
	Distance int // Plies from this node to the node its Eval came from
	parent   int
	first    int // Arena index of the first child
	count    int
}

// Tree is an arena of nodes rooted at index 0. The children of a node occupy one
// contiguous block allocated when the node is built and never resized.
type Tree struct {
	nodes    []Node
	maxDepth int
	engine   game.Color
}

func newTree(maxDepth int, engine game.Color, eval int) *Tree {
	return &Tree{
		nodes:    []Node{{Move: game.NullMove, Eval: eval, parent: noParent}},
		maxDepth: maxDepth,
		engine:   engine,
	}
}

func (t *Tree) Root() int {
	return 0
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Engine is the side to move at the root.
func (t *Tree) Engine() game.Color {
	return t.engine
}

// Node returns the node at arena index i. The pointer is invalidated by the
// next build step, so callers must not hold it across one.
func (t *Tree) Node(i int) *Node {
	return &t.nodes[i]
}

// Parent returns the arena index of the parent of i, or -1 for the root.
func (t *Tree) Parent(i int) int {
	return t.nodes[i].parent
}

func (t *Tree) NumChildren(i int) int {
	return t.nodes[i].count
}

// Child returns the arena index of the k-th child of i.
func (t *Tree) Child(i, k int) int {
	n := &t.nodes[i]
	if k < 0 || k >= n.count {
		panic("child index out of range")
	}
	return n.first + k
}

// Children returns the child block of i.
func (t *Tree) Children(i int) []Node {
	n := &t.nodes[i]
	return t.nodes[n.first : n.first+n.count : n.first+n.count]
}

// Path returns the moves leading from the root to i.
func (t *Tree) Path(i int) []game.Move {
	path := make([]game.Move, t.nodes[i].Depth)
	for ; i != t.Root(); i = t.nodes[i].parent {
		path[t.nodes[i].Depth-1] = t.nodes[i].Move
	}
	return path
}

// addChildren appends one child per move, evaluated with evals[k], and
// attaches the block to parent.
func (t *Tree) addChildren(parent int, moves []game.Move, evals []int) {
	first := len(t.nodes)
	depth := t.nodes[parent].Depth + 1
	for k, move := range moves {
		t.nodes = append(t.nodes, Node{
			Move:   move,
			Depth:  depth,
			Eval:   evals[k],
			parent: parent,
		})
	}
	t.nodes[parent].first = first
	t.nodes[parent].count = len(moves)
}
