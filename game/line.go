package game

// Line tracks the moves made on a Board along the current path from a root.
// Callers defer Rewind so the board returns to the root on every exit path.
type Line struct {
	board Board
	moves []Move
}

func NewLine(b Board) *Line {
	return &Line{board: b}
}

// Push makes the move on the board and records it.
func (l *Line) Push(move Move) {
	l.board.MakeMove(move)
	l.moves = append(l.moves, move)
}

// Pop undoes the most recently pushed move.
func (l *Line) Pop() Move {
	if len(l.moves) == 0 {
		panic("cannot pop: line is empty")
	}
	last := len(l.moves) - 1
	move := l.moves[last]
	l.moves = l.moves[:last]
	l.board.UndoMove(move)
	return move
}

func (l *Line) Len() int {
	return len(l.moves)
}

// Rewind undoes every pushed move, newest first.
func (l *Line) Rewind() {
	for len(l.moves) > 0 {
		l.Pop()
	}
}
