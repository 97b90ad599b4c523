package tiling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGameParsesDimensionsAndPieces(t *testing.T) {
	input := "3 2\n##\n.#\n\n##\n\n#\n"
	w, h, pieces, err := ReadGame(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, []string{"##\n.#", "##", "#"}, pieces)
}

func TestReadGameRejectsMissingDimensions(t *testing.T) {
	_, _, _, err := ReadGame(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadGameRejectsMalformedDimensions(t *testing.T) {
	_, _, _, err := ReadGame(strings.NewReader("not-a-number\n##\n"))
	assert.Error(t, err)
}
