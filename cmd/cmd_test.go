package cmd

import (
	"bytes"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const mateInOneFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	if !slices.Contains(args, "--log-level") {
		args = append(args, "--log-level", "warn")
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMoveCmd(t *testing.T) {
	t.Run("prints the mating move", func(t *testing.T) {
		out, err := run(t, "move", mateInOneFEN, "--depth", "2")

		require.NoError(t, err)
		require.Equal(t, "a1a8\n", out)
	})

	t.Run("plays moves before searching", func(t *testing.T) {
		out, err := run(t, "move", "--depth", "1", "--moves", "e2e4,e7e5")

		require.NoError(t, err)
		require.Len(t, strings.TrimSpace(out), 4)
	})

	t.Run("invalid fen", func(t *testing.T) {
		_, err := run(t, "move", "not a fen")

		require.Error(t, err)
	})

	t.Run("illegal move", func(t *testing.T) {
		_, err := run(t, "move", "--moves", "e2e5")

		require.Error(t, err)
	})

	t.Run("invalid tie break", func(t *testing.T) {
		_, err := run(t, "move", "--depth", "1", "--tie-break", "last")

		require.Error(t, err)
	})
}

func TestAnalyzeCmd(t *testing.T) {
	out, err := run(t, "analyze", mateInOneFEN, "--depth", "1")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Contains(t, lines[0], "white to move")
	require.Contains(t, lines[0], "eval mate, best a1a8")
	require.Len(t, lines, 18, "Header plus seventeen root moves")

	found := false
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "a1a8") {
			require.Contains(t, line, "mate")
			found = true
		}
	}
	require.True(t, found)
}

func TestMatchCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "match", "--games", "1", "--max-plies", "2", "--output", dir)

	require.NoError(t, err)
	written := strings.TrimSpace(out)
	require.True(t, strings.HasPrefix(written, dir))
	_, err = os.Stat(written)
	require.NoError(t, err)
}

func TestRootCmd(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		_, err := run(t, "move", "--log-level", "loud")

		require.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := run(t, "move", "--config", "missing.yaml")

		require.Error(t, err)
	})
}
