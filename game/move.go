package game

// Move is an opaque move token issued by a Board's LegalMoves.
type Move interface {
	String() string
}

type nullMove struct{}

func (nullMove) String() string {
	return "0000"
}

// NullMove marks "no move", e.g. the move leading to a search root.
var NullMove Move = nullMove{}
