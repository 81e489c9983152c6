package engine

import (
	"fmt"

	"go.uber.org/zap"
)

type starterPick struct {
	player int
	tile   Tile
}

// startRound deals a fresh round on top of the carried scores and seeds
// every train from the starting tile.
func (e *Engine) startRound() {
	s := e.state
	s.rules = e.cfg.Rules

	s.deck = Shuffle(GenerateSetFrom(s.maxPip, e.rng), e.rng)
	for i := range s.players {
		p := &s.players[i]
		p.hand = make([]Tile, 0, s.handSize+1)
		p.train = trainState{owner: PlayerKey(i), openEnd: NoEnd}
	}
	s.hub = trainState{owner: HubKey(), open: s.rules.MexAlwaysOpen, openEnd: NoEnd}

	for r := 0; r < s.handSize; r++ {
		for i := range s.players {
			s.players[i].hand = append(s.players[i].hand, e.popDeck())
		}
	}

	required := e.cfg.requiredPip(s.round)
	e.record(fmt.Sprintf("--- Round %d/%d ---", s.round, s.roundsTotal))
	e.record(fmt.Sprintf("Starter target: %d|%d", required, required))
	start := e.findStarter(required)
	starter := &s.players[start.player]
	starter.hand = handWithout(starter.hand, start.tile.ID)

	seed := required
	if start.tile.IsDouble() {
		seed = start.tile.A
	}
	s.hub.tiles = append(s.hub.tiles, start.tile)
	s.hub.openEnd = seed
	for i := range s.players {
		s.players[i].train.openEnd = seed
	}

	s.current = start.player
	s.pending = nil
	s.turn = turnFlags{}
	s.roundOver = false
	s.roundResult = ""
	s.lastSummary = nil

	e.record(fmt.Sprintf("Starter: P%d played %s to hub.", start.player, start.tile),
		zap.Int("player", start.player), zap.Stringer("tile", start.tile))
	e.record(fmt.Sprintf("Turn -> P%d", s.current), zap.Int("player", s.current))

	inHands := 0
	for _, p := range s.players {
		inHands += len(p.hand)
	}
	e.record(fmt.Sprintf("DEBUG: tile accounting: total=%d (hands=%d, hub=%d, boneyard=%d)",
		TotalTiles(s.maxPip), inHands, len(s.hub.tiles), len(s.deck)))
}

// popDeck draws from the end of the boneyard. Callers check it is non-empty.
func (e *Engine) popDeck() Tile {
	s := e.state
	t := s.deck[len(s.deck)-1]
	s.deck = s.deck[:len(s.deck)-1]
	return t
}

// findStarter applies the starting-double rules in priority order:
// hands in seat order, drawing round-robin from seat 0, highest double in
// hand, and finally seat 0's first tile.
func (e *Engine) findStarter(pip int) starterPick {
	s := e.state
	for i, p := range s.players {
		for _, t := range p.hand {
			if t.A == pip && t.B == pip {
				return starterPick{player: i, tile: t}
			}
		}
	}

	if s.rules.DrawUntilStartDouble {
		cursor := 0
		for len(s.deck) > 0 {
			drawn := e.popDeck()
			s.players[cursor].hand = append(s.players[cursor].hand, drawn)
			if drawn.A == pip && drawn.B == pip {
				e.record(fmt.Sprintf("Starter double %d|%d was not in hands. Found by drawing: P%d.", pip, pip, cursor),
					zap.Int("player", cursor))
				return starterPick{player: cursor, tile: drawn}
			}
			cursor = (cursor + 1) % len(s.players)
		}
		msg := fmt.Sprintf("WARNING: Deck exhausted while searching for starter %d|%d.", pip, pip)
		s.log = append(s.log, msg)
		e.logger.Warn("deck exhausted during starter search", zap.Int("round", s.round), zap.Int("pip", pip))
	} else {
		e.record(fmt.Sprintf("Starter %d|%d not found in hands. (House rule: do NOT draw for starter).", pip, pip))
	}

	if s.rules.FallbackHighestDouble {
		if pick, ok := e.highestDoubleInHands(); ok {
			e.record(fmt.Sprintf("FALLBACK: Using highest double in hands: P%d has %s.", pick.player, pick.tile),
				zap.Int("player", pick.player), zap.Stringer("tile", pick.tile))
			return pick
		}
	}

	msg := "WARNING: No starting double available. Using P0 first tile as starter (this is chaos)."
	s.log = append(s.log, msg)
	e.logger.Warn("chaos starter", zap.Int("round", s.round), zap.Stringer("tile", s.players[0].hand[0]))
	return starterPick{player: 0, tile: s.players[0].hand[0]}
}

// highestDoubleInHands keeps the first seat on ties.
func (e *Engine) highestDoubleInHands() (starterPick, bool) {
	var best starterPick
	found := false
	for i, p := range e.state.players {
		for _, t := range p.hand {
			if t.IsDouble() && (!found || t.A > best.tile.A) {
				best = starterPick{player: i, tile: t}
				found = true
			}
		}
	}
	return best, found
}
