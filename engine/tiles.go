package engine

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"
)

// DefaultMaxPip is the highest pip value of the standard double-twelve set.
const DefaultMaxPip = 12

// TotalTiles returns the number of tiles in a double-maxPip set.
func TotalTiles(maxPip int) int {
	if maxPip < 0 {
		return 0
	}
	return (maxPip + 1) * (maxPip + 2) / 2
}

// GenerateSet builds the complete double-maxPip tile inventory with random identities.
func GenerateSet(maxPip int) []Tile {
	return GenerateSetFrom(maxPip, nil)
}

// GenerateSetFrom builds the complete double-maxPip set, drawing tile identities
// from r. A seeded reader yields reproducible ids; nil uses crypto randomness.
func GenerateSetFrom(maxPip int, r io.Reader) []Tile {
	tiles := make([]Tile, 0, TotalTiles(maxPip))
	for a := 0; a <= maxPip; a++ {
		for b := a; b <= maxPip; b++ {
			tiles = append(tiles, Tile{ID: tileID(a, b, r), A: a, B: b})
		}
	}
	return tiles
}

func tileID(a, b int, r io.Reader) string {
	var id uuid.UUID
	var err error
	if r == nil {
		id, err = uuid.NewRandom()
	} else {
		id, err = uuid.NewRandomFromReader(r)
	}
	if err != nil {
		// Identity only has to be unique within one set.
		id = uuid.New()
	}
	return fmt.Sprintf("%d-%d-%s", a, b, id)
}

// Shuffle randomizes tile order in place (Fisher-Yates) and returns the slice.
func Shuffle(tiles []Tile, rng *rand.Rand) []Tile {
	for i := len(tiles) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	return tiles
}

// IsDouble reports whether both ends carry the same pip value.
func (t Tile) IsDouble() bool {
	return t.A == t.B
}

// Matches reports whether either end of the tile equals end.
func (t Tile) Matches(end int) bool {
	return t.A == end || t.B == end
}

// OtherEnd returns the pip left exposed when the tile is laid against end.
func (t Tile) OtherEnd(end int) (int, bool) {
	switch end {
	case t.A:
		return t.B, true
	case t.B:
		return t.A, true
	}
	return NoEnd, false
}

// Pips is the total pip count of the tile.
func (t Tile) Pips() int {
	return t.A + t.B
}

func (t Tile) String() string {
	return fmt.Sprintf("%d|%d", t.A, t.B)
}

// PipSum totals the pips of a hand.
func PipSum(hand []Tile) int {
	sum := 0
	for _, t := range hand {
		sum += t.Pips()
	}
	return sum
}
