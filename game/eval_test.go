package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateMaterial(t *testing.T) {
	t.Run("balanced starting position", func(t *testing.T) {
		b := newBoard(t, startFEN)

		require.Equal(t, 0, EvaluateMaterial(b, White))
		require.Equal(t, 0, EvaluateMaterial(b, Black))
	})

	t.Run("advanced white pawn earns a rank bonus", func(t *testing.T) {
		b := newBoard(t, "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")

		require.Equal(t, 130, EvaluateMaterial(b, White), "Pawn on the fourth rank is worth 100 + 3*10")
		require.Equal(t, -130, EvaluateMaterial(b, Black), "Score should flip sign for the other side")
	})

	t.Run("black pawns advance toward the first rank", func(t *testing.T) {
		b := newBoard(t, "4k3/8/8/4p3/8/8/8/4K3 w - - 0 1")

		require.Equal(t, 130, EvaluateMaterial(b, Black), "Pawn on the fifth rank is three ranks from black's side")
	})

	t.Run("checkmate overrides material", func(t *testing.T) {
		b := newBoard(t, foolsMateFEN)

		require.Equal(t, MaxEval, EvaluateMaterial(b, Black), "Delivering mate should score the maximum")
		require.Equal(t, MinEval, EvaluateMaterial(b, White), "Being mated should score the minimum")
	})

	t.Run("draws are penalized", func(t *testing.T) {
		b := newBoard(t, stalemateFEN)

		require.Equal(t, 900-DrawPenalty, EvaluateMaterial(b, White))
		require.Equal(t, -900-DrawPenalty, EvaluateMaterial(b, Black))
	})
}

func TestLine(t *testing.T) {
	t.Run("pushing and popping moves", func(t *testing.T) {
		b := newBoard(t, startFEN)
		e4, err := b.ParseMove("e2e4")
		require.NoError(t, err)

		line := NewLine(b)
		line.Push(e4)
		e5, err := b.ParseMove("e7e5")
		require.NoError(t, err)
		line.Push(e5)

		require.Equal(t, 2, line.Len())
		require.Equal(t, e5, line.Pop(), "Pop should undo the newest move")
		require.Equal(t, 1, b.Ply())
	})

	t.Run("rewinding restores the root on panic", func(t *testing.T) {
		b := newBoard(t, startFEN)
		before := b.FEN()

		require.Panics(t, func() {
			line := NewLine(b)
			defer line.Rewind()

			for _, uci := range []string{"d2d4", "d7d5", "c2c4"} {
				m, err := b.ParseMove(uci)
				require.NoError(t, err)
				line.Push(m)
			}
			panic("interrupted walk")
		})

		require.Equal(t, before, b.FEN(), "Deferred rewind should undo every pushed move")
		require.Equal(t, 0, b.Ply())
	})

	t.Run("popping an empty line panics", func(t *testing.T) {
		line := NewLine(newBoard(t, startFEN))

		require.Panics(t, func() { line.Pop() })
	})
}
