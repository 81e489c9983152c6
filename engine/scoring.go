package engine

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// endRound adds every hand's pips to its owner's score and, on the final
// round, closes the match.
func (e *Engine) endRound(reason string) {
	s := e.state
	s.roundOver = true

	adds := make([]RoundAdd, len(s.players))
	parts := make([]string, len(s.players))
	for i := range s.players {
		p := &s.players[i]
		added := PipSum(p.hand)
		p.score += added
		adds[i] = RoundAdd{Player: i, Added: added, Total: p.score}
		parts[i] = fmt.Sprintf("P%d+%d", i, added)
	}
	s.roundResult = fmt.Sprintf("%s Round scores added: %s.", reason, strings.Join(parts, ", "))
	e.record("ROUND OVER: "+s.roundResult)

	s.lastSummary = &RoundSummary{
		Reason:  reason,
		Round:   s.round,
		Winners: roundWinners(adds),
		Adds:    adds,
		Ranking: s.ranking(),
	}

	if s.round >= s.roundsTotal {
		s.matchOver = true
		winners := s.matchWinners()
		ids := make([]string, len(winners))
		for i, w := range winners {
			ids[i] = fmt.Sprintf("P%d", w)
		}
		e.record(fmt.Sprintf("MATCH OVER: Winner(s) %s with %d points.", strings.Join(ids, ", "), s.players[winners[0]].score),
			zap.Ints("winners", winners))
	}
}

// roundWinners are the players tied for the fewest pips added.
func roundWinners(adds []RoundAdd) []int {
	var winners []int
	best := 0
	for i, a := range adds {
		switch {
		case i == 0 || a.Added < best:
			best = a.Added
			winners = []int{a.Player}
		case a.Added == best:
			winners = append(winners, a.Player)
		}
	}
	return winners
}

// ranking orders players by ascending cumulative score, seat order on ties.
func (s *gameState) ranking() []Standing {
	out := make([]Standing, len(s.players))
	for i, p := range s.players {
		out[i] = Standing{Player: i, Score: p.score}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	return out
}

func (s *gameState) matchWinners() []int {
	var winners []int
	best := 0
	for i, p := range s.players {
		switch {
		case i == 0 || p.score < best:
			best = p.score
			winners = []int{i}
		case p.score == best:
			winners = append(winners, i)
		}
	}
	return winners
}
