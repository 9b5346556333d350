package game

import "math"

const (
	MinEval = math.MinInt32
	MaxEval = math.MaxInt32

	// Subtracted from drawn positions so the engine prefers playing on
	DrawPenalty = 1000
	// Per rank a pawn has advanced from its own side of the board
	PawnRankBonus = 10
)

var PieceValues = map[PieceType]int{
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
	King:   10000,
}

// EvaluateMaterial tallies material plus a pawn advancement bonus from the engine's
// perspective. Checkmate overrides material with MaxEval (engine delivered mate) or
// MinEval (engine is mated); draws are penalized by DrawPenalty.
func EvaluateMaterial(b Board, engine Color) int {
	if b.IsCheckmate() {
		if b.Turn() == engine {
			return MinEval
		}
		return MaxEval
	}

	eval := material(b.Pieces(), engine)
	if b.IsDraw() {
		eval -= DrawPenalty
	}
	return eval
}

func material(pieces []Piece, engine Color) int {
	eval := 0
	for _, p := range pieces {
		value := PieceValues[p.Type]
		if p.Type == Pawn {
			value += pawnAdvancement(p) * PawnRankBonus
		}
		if p.Color == engine {
			eval += value
		} else {
			eval -= value
		}
	}
	return eval
}

// pawnAdvancement counts ranks from the pawn owner's first rank
func pawnAdvancement(p Piece) int {
	if p.Color == White {
		return p.Rank
	}
	return 7 - p.Rank
}
