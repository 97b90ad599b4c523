package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientationsDedupSquare(t *testing.T) {
	s, err := parsePiece("##\n##")
	require.NoError(t, err)

	orients := orientations(s)
	assert.Len(t, orients, 1, "a 2x2 square is invariant under all of D4")
}

func TestOrientationsDedupDomino(t *testing.T) {
	s, err := parsePiece("##")
	require.NoError(t, err)

	orients := orientations(s)
	assert.Len(t, orients, 2, "a domino has only a horizontal and a vertical form")
}

func TestOrientationsLTromino(t *testing.T) {
	s, err := parsePiece("#.\n##")
	require.NoError(t, err)

	orients := orientations(s)
	assert.Len(t, orients, 4, "an L-tromino is mirror-symmetric about a diagonal, so its flipped forms coincide with its four rotations")

	seen := make(map[string]bool)
	for _, o := range orients {
		k := o.key()
		assert.False(t, seen[k], "orientations must be pairwise distinct")
		seen[k] = true
	}
}
