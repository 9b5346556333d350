package searcher

import (
	"fmt"
	"strings"
	"testing"

	"chessbot/game"

	"github.com/stretchr/testify/require"
)

type mockMove string

func (m mockMove) String() string {
	return string(m)
}

// mockBoard walks a handcrafted game tree. Positions are keyed by the moves
// played from the root joined with "/", "" being the root.
type mockBoard struct {
	moves  map[string][]string
	scores map[string]int
	err    map[string]error
	turn   game.Color // Side to move at the root
	path   []string
	makes  int
	undos  int
}

func (b *mockBoard) key() string {
	return strings.Join(b.path, "/")
}

func (b *mockBoard) LegalMoves() ([]game.Move, error) {
	if err := b.err[b.key()]; err != nil {
		return nil, err
	}
	names := b.moves[b.key()]
	moves := make([]game.Move, len(names))
	for i, name := range names {
		moves[i] = mockMove(name)
	}
	return moves, nil
}

func (b *mockBoard) MakeMove(move game.Move) {
	b.path = append(b.path, move.String())
	b.makes++
}

func (b *mockBoard) UndoMove(move game.Move) {
	last := len(b.path) - 1
	if last < 0 || b.path[last] != move.String() {
		panic(fmt.Sprintf("undo %s out of order at %q", move, b.key()))
	}
	b.path = b.path[:last]
	b.undos++
}

func (b *mockBoard) IsCheckmate() bool {
	return false
}

func (b *mockBoard) IsDraw() bool {
	return false
}

func (b *mockBoard) Turn() game.Color {
	if len(b.path)%2 == 1 {
		return b.turn.Other()
	}
	return b.turn
}

func (b *mockBoard) Pieces() []game.Piece {
	return nil
}

func mockEval(b game.Board, engine game.Color) int {
	return b.(*mockBoard).scores[b.(*mockBoard).key()]
}

// newMockBoard returns the depth-2 tree:
//
//	root: a, b, c
//	a: a1 (3), a2 (7)
//	b: b1 (4), b2 (6), b3 (5)
//	c: c1 (9)
func newMockBoard() *mockBoard {
	return &mockBoard{
		moves: map[string][]string{
			"":  {"a", "b", "c"},
			"a": {"a1", "a2"},
			"b": {"b1", "b2", "b3"},
			"c": {"c1"},
		},
		scores: map[string]int{
			"":     1,
			"a":    5,
			"b":    0,
			"c":    -2,
			"a/a1": 3,
			"a/a2": 7,
			"b/b1": 4,
			"b/b2": 6,
			"b/b3": 5,
			"c/c1": 9,
		},
		turn: game.White,
	}
}

func TestTree(t *testing.T) {
	board := newMockBoard()
	tree, err := Build(board, 2, WithEvaluationFn(mockEval))
	require.NoError(t, err)

	t.Run("arena layout", func(t *testing.T) {
		require.Equal(t, 10, tree.Len())
		require.Equal(t, 0, tree.Root())
		require.Equal(t, noParent, tree.Parent(tree.Root()))
		require.Equal(t, 2, tree.MaxDepth())
		require.Equal(t, game.White, tree.Engine())
		require.Equal(t, game.NullMove, tree.Node(tree.Root()).Move)
	})

	t.Run("children are one contiguous block", func(t *testing.T) {
		require.Equal(t, 3, tree.NumChildren(tree.Root()))
		children := tree.Children(tree.Root())
		for k, child := range children {
			i := tree.Child(tree.Root(), k)
			require.Equal(t, tree.Node(tree.Root()).first+k, i)
			require.Equal(t, child.Move, tree.Node(i).Move)
			require.Equal(t, tree.Root(), tree.Parent(i))
		}
	})

	t.Run("path from root", func(t *testing.T) {
		b := tree.Child(tree.Root(), 1)
		b3 := tree.Child(b, 2)

		require.Equal(t, []game.Move{mockMove("b"), mockMove("b3")}, tree.Path(b3))
		require.Empty(t, tree.Path(tree.Root()))
	})

	t.Run("child index out of range", func(t *testing.T) {
		c := tree.Child(tree.Root(), 2)
		c1 := tree.Child(c, 0)

		require.Panics(t, func() { tree.Child(c, 1) })
		require.Panics(t, func() { tree.Child(c1, 0) }, "Leaves have no children")
		require.Empty(t, tree.Children(c1))
	})
}
