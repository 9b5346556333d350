package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"chessbot/config"

	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows[1:]
}

func countRows(t *testing.T, path string) int {
	t.Helper()
	return len(readRows(t, path))
}

func TestRun(t *testing.T) {
	t.Run("writes records for every game", func(t *testing.T) {
		cfg := config.Default().Match
		cfg.OutputDir = t.TempDir()
		cfg.Games = 2
		cfg.MaxPlies = 4
		cfg.Agents = []config.AgentConfig{
			{ID: 1, Kind: config.MinimaxAgent, SearchConfig: config.SearchConfig{Depth: 1}},
			{ID: 2, Kind: config.RandomAgent, SearchConfig: config.SearchConfig{Seed: 5}},
		}

		dir, err := Run(cfg)

		require.NoError(t, err)
		require.Equal(t, 2, countRows(t, filepath.Join(dir, "agent_configs.csv")))
		require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")), "Two matchups of two games")
		total := 0
		for _, row := range readRows(t, filepath.Join(dir, "game_records.csv")) {
			moves, err := strconv.Atoi(row[9])
			require.NoError(t, err)
			require.LessOrEqual(t, moves, cfg.MaxPlies)
			total += moves
		}
		require.Equal(t, total, countRows(t, filepath.Join(dir, "move_records.csv")))
	})

	t.Run("mate ends the game early", func(t *testing.T) {
		cfg := config.Default().Match
		cfg.OutputDir = t.TempDir()
		cfg.Games = 1
		cfg.StartFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
		cfg.Matchups = []config.Matchup{{White: 1, Black: 2}}

		dir, err := Run(cfg)

		require.NoError(t, err)
		require.Equal(t, 1, countRows(t, filepath.Join(dir, "move_records.csv")))
	})

	t.Run("unknown agent", func(t *testing.T) {
		cfg := config.Default().Match
		cfg.OutputDir = t.TempDir()
		cfg.Matchups = []config.Matchup{{White: 1, Black: 9}}

		_, err := Run(cfg)

		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
