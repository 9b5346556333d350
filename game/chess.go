package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

const fiftyMoveHalfMoves = 100

var pieceTypes = map[chess.PieceType]PieceType{
	chess.Pawn:   Pawn,
	chess.Knight: Knight,
	chess.Bishop: Bishop,
	chess.Rook:   Rook,
	chess.Queen:  Queen,
	chess.King:   King,
}

// ChessBoard is a Board backed by github.com/notnil/chess. Library positions are
// immutable, so making a move pushes the updated position and undoing pops it.
type ChessBoard struct {
	positions []*chess.Position // positions[0] is the position the board was created with
	keys      []string          // repetition key of each entry in positions
	clocks    []int             // half-move clock of each entry in positions
	moves     []*chess.Move
	history   []string // repetition keys of game positions that preceded positions[0]
}

// NewChessBoard creates a board from a FEN string.
func NewChessBoard(fen string) (*ChessBoard, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fen %q: %w", fen, err)
	}
	return FromGame(chess.NewGame(option)), nil
}

// FromGame creates a board at the game's current position. Earlier positions
// of the game are kept for repetition detection.
func FromGame(g *chess.Game) *ChessBoard {
	positions := g.Positions()
	history := make([]string, 0, len(positions))
	for _, p := range positions[:len(positions)-1] {
		history = append(history, repetitionKey(p))
	}
	b := &ChessBoard{history: history}
	b.push(g.Position())
	return b
}

// push records the position with its repetition key and half-move clock, so
// evaluations never serialize a position again.
func (b *ChessBoard) push(pos *chess.Position) {
	key, clock := positionFields(pos)
	b.positions = append(b.positions, pos)
	b.keys = append(b.keys, key)
	b.clocks = append(b.clocks, clock)
}

// Position returns the current position.
func (b *ChessBoard) Position() *chess.Position {
	return b.positions[len(b.positions)-1]
}

func (b *ChessBoard) FEN() string {
	return b.Position().String()
}

// Ply returns the number of moves currently made on top of the initial position.
func (b *ChessBoard) Ply() int {
	return len(b.moves)
}

func (b *ChessBoard) LegalMoves() ([]Move, error) {
	valid := b.Position().ValidMoves()
	if len(valid) > MaxMoves {
		return nil, fmt.Errorf("%d moves in %s: %w", len(valid), b.FEN(), ErrMoveBufferExceeded)
	}
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = m
	}
	return moves, nil
}

// ParseMove decodes a UCI move string that is legal in the current position.
func (b *ChessBoard) ParseMove(uci string) (Move, error) {
	decoded, err := chess.UCINotation{}.Decode(b.Position(), uci)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", uci, err)
	}
	for _, m := range b.Position().ValidMoves() {
		if m.String() == decoded.String() {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%s in %s: %w", uci, b.FEN(), ErrIllegalMove)
}

func (b *ChessBoard) MakeMove(move Move) {
	m := chessMove(move)
	b.push(b.Position().Update(m))
	b.moves = append(b.moves, m)
}

func (b *ChessBoard) UndoMove(move Move) {
	if len(b.moves) == 0 {
		panic(fmt.Sprintf("cannot undo %s: no move made", move))
	}
	last := b.moves[len(b.moves)-1]
	if last.String() != move.String() {
		panic(fmt.Sprintf("cannot undo %s: last move made was %s", move, last))
	}
	b.moves = b.moves[:len(b.moves)-1]
	top := len(b.positions) - 1
	b.positions = b.positions[:top]
	b.keys = b.keys[:top]
	b.clocks = b.clocks[:top]
}

func (b *ChessBoard) IsCheckmate() bool {
	return b.Position().Status() == chess.Checkmate
}

func (b *ChessBoard) IsDraw() bool {
	switch b.Position().Status() {
	case chess.Stalemate:
		return true
	case chess.Checkmate:
		return false
	}
	return b.halfMoveClock() >= fiftyMoveHalfMoves ||
		b.insufficientMaterial() ||
		b.repetitions() >= 3
}

func (b *ChessBoard) Turn() Color {
	if b.Position().Turn() == chess.White {
		return White
	}
	return Black
}

func (b *ChessBoard) Pieces() []Piece {
	squares := b.Position().Board().SquareMap()
	pieces := make([]Piece, 0, len(squares))
	for sq, p := range squares {
		color := White
		if p.Color() == chess.Black {
			color = Black
		}
		pieces = append(pieces, Piece{
			Type:  pieceTypes[p.Type()],
			Color: color,
			Rank:  int(sq.Rank()),
		})
	}
	return pieces
}

func (b *ChessBoard) halfMoveClock() int {
	return b.clocks[len(b.clocks)-1]
}

// insufficientMaterial reports bare kings or a king with a single minor piece.
func (b *ChessBoard) insufficientMaterial() bool {
	minors := 0
	for _, p := range b.Pieces() {
		switch p.Type {
		case King:
		case Knight, Bishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}

// repetitions counts occurrences of the current position, itself included.
func (b *ChessBoard) repetitions() int {
	current := b.keys[len(b.keys)-1]
	count := 0
	for _, key := range b.history {
		if key == current {
			count++
		}
	}
	for _, key := range b.keys {
		if key == current {
			count++
		}
	}
	return count
}

// repetitionKey keeps placement, side to move, castling rights and en passant
// square; the move clocks do not take part in repetition.
func repetitionKey(pos *chess.Position) string {
	key, _ := positionFields(pos)
	return key
}

// positionFields splits a position's FEN into its repetition key and its
// half-move clock.
func positionFields(pos *chess.Position) (string, int) {
	fields := strings.Fields(pos.String())
	clock := 0
	if len(fields) > 4 {
		if c, err := strconv.Atoi(fields[4]); err == nil {
			clock = c
		}
		fields = fields[:4]
	}
	return strings.Join(fields, " "), clock
}

func chessMove(move Move) *chess.Move {
	m, ok := move.(*chess.Move)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	return m
}
