package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/signalnine/double12/engine"
	"github.com/signalnine/double12/mcts"
)

// AIPlayerType specifies which AI to use
type AIPlayerType uint8

const (
	RandomAI AIPlayerType = 0 // "easy": any legal play
	NormalAI AIPlayerType = 1
	HardAI   AIPlayerType = 2
	ChaosAI  AIPlayerType = 3
	MCTSAI   AIPlayerType = 4
)

var aiNames = map[AIPlayerType]string{
	RandomAI: "easy",
	NormalAI: "normal",
	HardAI:   "hard",
	ChaosAI:  "chaos",
	MCTSAI:   "mcts",
}

func (t AIPlayerType) String() string {
	if name, ok := aiNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ai(%d)", uint8(t))
}

// ParseAIType accepts a difficulty name as shown in the menus.
func ParseAIType(s string) (AIPlayerType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "random" {
		return RandomAI, nil
	}
	for t, name := range aiNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Picker proposes a placement for player, or returns ok=false to ask for a
// draw. Proposals are checked against the live legal list before use.
type Picker func(e *engine.Engine, player int) (move engine.Move, ok bool)

// NewPicker builds the policy for one seat.
func NewPicker(ai AIPlayerType, mctsIterations int, rng *rand.Rand) Picker {
	if ai == MCTSAI {
		return func(e *engine.Engine, player int) (engine.Move, bool) {
			action := mcts.SearchWithParams(e, mcts.SearchParams{Iterations: mctsIterations, Rand: rng})
			if action.Kind != engine.ActionPlay {
				return engine.Move{}, false
			}
			return action.Move, true
		}
	}
	return func(e *engine.Engine, player int) (engine.Move, bool) {
		moves, err := e.LegalMoves(player)
		if err != nil {
			return engine.Move{}, false
		}
		return ChooseMove(moves, player, ai, rng)
	}
}

// ChooseMove applies a heuristic policy to a legal-move list.
func ChooseMove(moves []engine.Move, player int, ai AIPlayerType, rng *rand.Rand) (engine.Move, bool) {
	if len(moves) == 0 {
		return engine.Move{}, false
	}
	if ai == RandomAI || ai == MCTSAI {
		return moves[rng.Intn(len(moves))], true
	}

	// Random noise is drawn once per move, never inside the comparator.
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(m, player, ai, rng)
	}
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	return moves[idx[0]], true
}

// scoreMove assigns a heuristic value to a move
func scoreMove(m engine.Move, player int, ai AIPlayerType, rng *rand.Rand) int {
	own := m.Target == engine.PlayerKey(player)
	hub := m.Target.IsHub()
	other := !own && !hub
	pips := m.Tile.Pips()

	score := 0
	switch ai {
	case ChaosAI:
		switch {
		case other:
			score += 900
		case hub:
			score += 500
		default:
			score += 200
		}
		if m.Tile.IsDouble() {
			score += 600
		}
		score += pips * 2
		score += rng.Intn(50)

	case HardAI:
		switch {
		case own:
			score += 700
		case hub:
			score += 650
		default:
			score += 900
		}
		score += pips * 8
		if m.Tile.IsDouble() {
			score += 120
		}
		if other {
			score += 250
		}

	default:
		switch {
		case own:
			score += 1000
		case hub:
			score += 650
		default:
			score += 250
		}
		score += pips * 4
		if m.Tile.IsDouble() {
			score -= 20
		}
	}
	return score
}
