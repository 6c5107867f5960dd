package server

import (
	"testing"

	"github.com/kmansel/greenwords/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBoardDeterministic(t *testing.T) {
	wordsA, oneA, twoA := GenerateBoard(1234)
	wordsB, oneB, twoB := GenerateBoard(1234)

	assert.Equal(t, wordsA, wordsB)
	assert.Equal(t, oneA, oneB)
	assert.Equal(t, twoA, twoB)

	wordsC, _, _ := GenerateBoard(5678)
	assert.NotEqual(t, wordsA, wordsC)
}

func TestGenerateBoardDistribution(t *testing.T) {
	boardWords, one, two := GenerateBoard(99)

	require.Len(t, boardWords, game.BoardSize)
	require.Len(t, one, game.BoardSize)
	require.Len(t, two, game.BoardSize)

	seen := map[string]bool{}
	for _, w := range boardWords {
		assert.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true
	}

	count := func(layout []game.Color, c game.Color) int {
		n := 0
		for _, v := range layout {
			if v == c {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 9, count(one, game.ColorGreen))
	assert.Equal(t, 3, count(one, game.ColorBlack))
	assert.Equal(t, 9, count(two, game.ColorGreen))
	assert.Equal(t, 3, count(two, game.ColorBlack))

	distinctGreens := 0
	for i := range one {
		if one[i] == game.ColorGreen || two[i] == game.ColorGreen {
			distinctGreens++
		}
	}
	assert.Equal(t, game.TotalGreenWords, distinctGreens)
}
