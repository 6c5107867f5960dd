package server

import (
	"math/rand"

	"github.com/kmansel/greenwords/pkg/game"
	"github.com/kmansel/greenwords/pkg/words"
	"github.com/valyala/fastrand"
)

// keyDistribution is the fixed keycard pair distribution for a 25-cell board:
// each side sees 9 greens and 3 blacks, and the two keycards overlap so that
// exactly 15 distinct words are green on at least one side.
var keyDistribution = []struct {
	one   game.Color
	two   game.Color
	count int
}{
	{game.ColorGreen, game.ColorGreen, 3},
	{game.ColorGreen, game.ColorBlack, 1},
	{game.ColorGreen, game.ColorTan, 5},
	{game.ColorBlack, game.ColorGreen, 1},
	{game.ColorBlack, game.ColorBlack, 1},
	{game.ColorBlack, game.ColorTan, 1},
	{game.ColorTan, game.ColorGreen, 5},
	{game.ColorTan, game.ColorBlack, 1},
	{game.ColorTan, game.ColorTan, 7},
}

// NewSeed returns a random board seed.
func NewSeed() int64 {
	return int64(fastrand.Uint32())<<31 | int64(fastrand.Uint32())
}

// GenerateBoard deterministically derives a board from a seed: 25 words drawn
// from the pool and both keycard layouts in board order.
func GenerateBoard(seed int64) (boardWords []string, oneLayout, twoLayout []game.Color) {
	r := rand.New(rand.NewSource(seed))

	boardWords = words.Draw(r, game.BoardSize)

	type pair struct {
		one game.Color
		two game.Color
	}
	pairs := make([]pair, 0, game.BoardSize)
	for _, d := range keyDistribution {
		for i := 0; i < d.count; i++ {
			pairs = append(pairs, pair{one: d.one, two: d.two})
		}
	}
	r.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	oneLayout = make([]game.Color, len(pairs))
	twoLayout = make([]game.Color, len(pairs))
	for i, p := range pairs {
		oneLayout[i] = p.one
		twoLayout[i] = p.two
	}
	return boardWords, oneLayout, twoLayout
}
