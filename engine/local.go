package engine

import (
	"fmt"
	"time"

	"chessbot/agent"
	"chessbot/game"
	"chessbot/meta"
	"chessbot/metrics"
	"chessbot/utils"

	"github.com/google/uuid"
	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local plays two in-process agents against each other on one chess.Game.
type Local struct {
	game     *chess.Game
	agents   [2]Adapter // Indexed by game.Color
	budget   time.Duration
	maxPlies int
}

func WithBudget(budget time.Duration) Option {
	return func(e *Local) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

func WithMaxPlies(plies int) Option {
	return func(e *Local) {
		if plies > 0 {
			e.maxPlies = plies
		}
	}
}

// LocalEngine starts a game from fen, or the standard position when fen is empty.
func LocalEngine(white, black agent.Agent, fen string, options ...Option) (*Local, error) {
	g := chess.NewGame(chess.UseNotation(chess.UCINotation{}))
	if fen != "" {
		option, err := chess.FEN(fen)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start fen %q: %w", fen, err)
		}
		g = chess.NewGame(option, chess.UseNotation(chess.UCINotation{}))
	}

	e := &Local{ // Default values
		game:     g,
		agents:   [2]Adapter{{Agent: white}, {Agent: black}},
		budget:   meta.TURN_BUDGET,
		maxPlies: meta.MAX_PLIES,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Game returns the game played so far.
func (e *Local) Game() *chess.Game {
	return e.game
}

// Run executes the entire game loop until the game ends or max plies are played.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{ID: uuid.New(), StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s starting from %s", gameMetric.ID, e.game.Position())

	board := game.FromGame(e.game)
	for ply := 0; ; ply++ {
		if winner, method, over := outcome(board); over {
			gameMetric.Winner, gameMetric.Method = winner, method
			break
		}
		if ply >= e.maxPlies {
			gameMetric.Winner, gameMetric.Method = Draw, MaxPlies
			break
		}

		turn := board.Turn()
		move, searchMetric := e.agents[turn].FindMove(board, e.budget)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         ply + 1,
			Player:       turn.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		if err := e.game.Move(move); err != nil {
			panic(fmt.Sprintf("validated move %s rejected: %v", move, err))
		}
		log.Debug().Msgf("ply %d: %s played %s", ply+1, turn, move)

		board = game.FromGame(e.game)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game %s ended by %s after %d plies, winner: %s", gameMetric.ID, gameMetric.Method, gameMetric.TotalMoves, gameMetric.Winner)
	return gameMetric.Winner, gameMetric, moveMetrics
}

func outcome(board *game.ChessBoard) (winner, method string, over bool) {
	switch {
	case board.IsCheckmate():
		if board.Turn() == game.White {
			return BlackWins, Checkmate, true
		}
		return WhiteWins, Checkmate, true
	case board.Position().Status() == chess.Stalemate:
		return Draw, Stalemate, true
	case board.IsDraw():
		return Draw, DrawRule, true
	}
	return "", "", false
}

// Adapter guards the game against agent failures: a search error or a move
// that is not legal in the position is replaced by the first legal move.
type Adapter struct {
	Agent agent.Agent
}

func (a *Adapter) FindMove(board *game.ChessBoard, budget time.Duration) (*chess.Move, metrics.SearchMetric) {
	legal := board.Position().ValidMoves()
	if len(legal) == 0 {
		panic("No legal moves at all!")
	}

	candidate, metric, err := a.Agent.FindMove(board, budget)
	if err != nil {
		log.Warn().Err(err).Msgf("agent failed to find a move in %s, playing %s", board.FEN(), legal[0])
		return legal[0], metric
	}

	names := make([]string, len(legal))
	for i, m := range legal {
		names[i] = m.String()
	}
	i := utils.FindIndex(names, candidate.String())
	if i < 0 {
		log.Warn().Msgf("agent returned illegal move %s in %s, playing %s", candidate, board.FEN(), legal[0])
		return legal[0], metric
	}
	return legal[i], metric
}
