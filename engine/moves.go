package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// PlayTile lays a tile from player's hand on target.
func (e *Engine) PlayTile(player int, tileID string, target TrainKey) (Snapshot, error) {
	tile, err := e.checkPlay(player, tileID, target)
	if err != nil {
		return e.State(), err
	}
	s := e.state
	p := &s.players[player]
	tr, _ := s.train(target)
	end := s.requiredEnd(target)
	pendingBefore := s.pending

	p.hand = handWithout(p.hand, tileID)
	tr.tiles = append(tr.tiles, tile)
	tr.openEnd, _ = tile.OtherEnd(end)
	e.record(fmt.Sprintf("P%d played %s on %s -> end %d", player, tile, target.Label(), tr.openEnd),
		zap.Int("player", player), zap.Stringer("train", target), zap.Stringer("tile", tile))

	if target == PlayerKey(player) && tr.open {
		tr.open = false
		e.record(fmt.Sprintf("P%d's marker removed (train CLOSED).", player), zap.Int("player", player))
	}

	s.turn.played = true

	// Satisfaction is resolved before a new double can set its own obligation.
	if pendingBefore != nil && pendingBefore.Train == target {
		s.pending = nil
		s.turn.doubleSatisfied = true
		e.record(fmt.Sprintf("Double satisfied on %s.", target.Label()), zap.Stringer("train", target))
	}

	if tile.IsDouble() {
		if s.rules.DoubleMustBeSatisfied {
			s.pending = &PendingDouble{Train: target, Pip: tile.A}
			e.record(fmt.Sprintf("Double played! Must satisfy %d on %s.", tile.A, target.Label()),
				zap.Stringer("train", target))
		} else {
			e.record("Double played, but doubles do NOT require satisfaction (house rule).")
		}
	}

	if len(p.hand) == 0 {
		e.endRound(fmt.Sprintf("P%d went out (emptied hand).", player))
	}
	return e.State(), nil
}

// Draw takes one tile from the boneyard. If the player still has nothing to
// play the turn passes automatically.
func (e *Engine) Draw(player int) (Snapshot, error) {
	if err := e.CanDraw(player); err != nil {
		return e.State(), err
	}
	s := e.state
	p := &s.players[player]
	p.hand = append(p.hand, e.popDeck())
	s.turn.drawn = true
	e.record(fmt.Sprintf("P%d drew a tile.", player), zap.Int("player", player))

	if s.hasLegalMove(player) {
		e.record(fmt.Sprintf("P%d has a playable move after drawing.", player), zap.Int("player", player))
		return e.State(), nil
	}

	if s.pending != nil {
		e.record(fmt.Sprintf("P%d cannot satisfy the double after drawing. Passing to next player.", player),
			zap.Int("player", player))
	} else if s.rules.OpenTrainOnNoMove {
		if e.openTrain(player) {
			e.record(fmt.Sprintf("P%d had no moves. Marker placed: train OPEN.", player), zap.Int("player", player))
		} else {
			e.record(fmt.Sprintf("P%d had no moves. Train already OPEN.", player), zap.Int("player", player))
		}
	} else {
		e.record(fmt.Sprintf("P%d had no moves. (House rule: do NOT open train).", player), zap.Int("player", player))
	}
	e.advanceTurn()
	return e.State(), nil
}

// Pass ends player's turn when nothing else is allowed, or after a play.
func (e *Engine) Pass(player int) (Snapshot, error) {
	if err := e.CanPass(player); err != nil {
		return e.State(), err
	}
	s := e.state

	switch {
	case s.pending == nil && s.turn.played:
		e.record(fmt.Sprintf("P%d passes (turn ends).", player), zap.Int("player", player))

	case s.pending != nil:
		if s.rules.OpenTrainOnNoMove {
			if e.openTrain(player) {
				e.record(fmt.Sprintf("P%d could not satisfy the double. Marker placed: train OPEN.", player),
					zap.Int("player", player))
			}
		} else {
			e.record(fmt.Sprintf("P%d could not satisfy the double. (House rule: do NOT open train).", player),
				zap.Int("player", player))
		}
		e.record(fmt.Sprintf("P%d passes. Double obligation continues to next player.", player), zap.Int("player", player))

	default:
		if s.rules.OpenTrainOnNoMove {
			if e.openTrain(player) {
				e.record(fmt.Sprintf("P%d is stuck. Marker placed: train OPEN.", player), zap.Int("player", player))
			}
		} else {
			e.record(fmt.Sprintf("P%d is stuck. (House rule: do NOT open train).", player), zap.Int("player", player))
		}
		e.record(fmt.Sprintf("P%d passes.", player), zap.Int("player", player))
	}
	e.advanceTurn()
	return e.State(), nil
}

// Apply dispatches an action to PlayTile, Draw or Pass.
func (e *Engine) Apply(player int, a Action) (Snapshot, error) {
	switch a.Kind {
	case ActionPlay:
		return e.PlayTile(player, a.Move.TileID, a.Move.Target)
	case ActionDraw:
		return e.Draw(player)
	case ActionPass:
		return e.Pass(player)
	}
	return e.State(), newRuleError(CodeBadTarget, fmt.Sprintf("unknown action %d", a.Kind))
}

// openTrain places the player's marker, reporting whether it was closed before.
func (e *Engine) openTrain(player int) bool {
	tr := &e.state.players[player].train
	if tr.open {
		return false
	}
	tr.open = true
	return true
}

func (e *Engine) advanceTurn() {
	s := e.state
	s.turn = turnFlags{}
	s.current = (s.current + 1) % len(s.players)
	e.record(fmt.Sprintf("Turn -> P%d", s.current), zap.Int("player", s.current))
	e.checkStalemate()
}

// checkStalemate ends the round when the boneyard is empty and nobody can
// make progress. An unsatisfiable double either ends the round or, under
// the house rule, is dropped before the general check.
func (e *Engine) checkStalemate() {
	s := e.state
	if s.matchOver || s.roundOver || len(s.deck) != 0 {
		return
	}
	if s.pending != nil {
		if s.anyoneCanPlay() {
			return
		}
		if s.rules.UnsatisfiedDoubleEndsRound {
			e.endRound(fmt.Sprintf("Stalemate (unsatisfied double %d on %s, boneyard empty).", s.pending.Pip, s.pending.Train))
			return
		}
		e.record("Stalemate avoided (house rule): unsatisfied double cleared and play continues.")
		s.pending = nil
		// Fall through: with the obligation gone, a table with no move at
		// all ends now instead of one forced pass later.
	}
	if !s.anyoneCanPlay() {
		e.endRound("Stalemate (boneyard empty and no legal moves).")
	}
}
