package engine

import "chessbot/metrics"

const (
	WhiteWins = "white"
	BlackWins = "black"
	Draw      = "draw"

	Checkmate = "checkmate"
	Stalemate = "stalemate"
	DrawRule  = "draw_rule" // Fifty-move, repetition or insufficient material
	MaxPlies  = "max_plies"
)

type Engine interface {
	// Run plays a game till checkmate, a draw or a max number of plies is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Engine = (*Local)(nil)
