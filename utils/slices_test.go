package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	moves := []string{"e2e4", "d2d4", "e2e4"}

	require.Equal(t, 0, FindIndex(moves, "e2e4"), "First match should win")
	require.Equal(t, 1, FindIndex(moves, "d2d4"))
	require.Equal(t, -1, FindIndex(moves, "a7a8q"))
	require.Equal(t, -1, FindIndex(nil, 3))
}
