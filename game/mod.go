package game

import "errors"

// MaxMoves bounds the number of legal moves a Board may report for one position.
const MaxMoves = 128

var (
	ErrMoveBufferExceeded = errors.New("legal move count exceeds move buffer")
	ErrIllegalMove        = errors.New("illegal move")
)

// Board is a single mutable position. Moves are applied and reverted in place;
// undos must be issued in exact reverse order of the makes they revert.
type Board interface {
	// LegalMoves returns at most MaxMoves moves, or ErrMoveBufferExceeded
	LegalMoves() ([]Move, error)
	MakeMove(Move)
	UndoMove(Move)
	IsCheckmate() bool
	IsDraw() bool
	Turn() Color
	Pieces() []Piece
}

// Evaluates the position to a signed score from the engine side's perspective.
// Positive is good for engine.
type Evaluate func(b Board, engine Color) int
