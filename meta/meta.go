// meta/meta.go
package meta

import "time"

// DEFAULT_DEPTH defines the number of plies searched by the minimax engine.
const DEFAULT_DEPTH = 3

// TURN_BUDGET defines the default per-turn time budget given to an agent.
const TURN_BUDGET = 2 * time.Second

// GAMES_PER_MATCHUP defines the number of games played per matchup.
const GAMES_PER_MATCHUP = 2

// MAX_PLIES defines the number of half-moves after which a match game is stopped.
const MAX_PLIES = 300
