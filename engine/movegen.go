package engine

import "fmt"

// playableTrains lists the trains player may lay on: only the pending
// double's train while one exists, otherwise own train, hub, and open
// opponent trains.
func (s *gameState) playableTrains(player int) []TrainKey {
	if s.pending != nil {
		return []TrainKey{s.pending.Train}
	}
	keys := make([]TrainKey, 0, 2+len(s.players))
	keys = append(keys, PlayerKey(player), HubKey())
	for i, p := range s.players {
		if i != player && p.train.open {
			keys = append(keys, PlayerKey(i))
		}
	}
	return keys
}

func (s *gameState) isPlayable(player int, key TrainKey) bool {
	for _, k := range s.playableTrains(player) {
		if k == key {
			return true
		}
	}
	return false
}

// requiredEnd is the pip the next tile on key must match.
func (s *gameState) requiredEnd(key TrainKey) int {
	if s.pending != nil && s.pending.Train == key {
		return s.pending.Pip
	}
	tr, ok := s.train(key)
	if !ok {
		return NoEnd
	}
	return tr.openEnd
}

// legalMoves ignores turn order; stalemate detection scans every seat.
func (s *gameState) legalMoves(player int) []Move {
	trains := s.playableTrains(player)
	var moves []Move
	for _, t := range s.players[player].hand {
		for _, key := range trains {
			if t.Matches(s.requiredEnd(key)) {
				moves = append(moves, Move{TileID: t.ID, Tile: t, Target: key})
			}
		}
	}
	return moves
}

func (s *gameState) hasLegalMove(player int) bool {
	trains := s.playableTrains(player)
	for _, t := range s.players[player].hand {
		for _, key := range trains {
			if t.Matches(s.requiredEnd(key)) {
				return true
			}
		}
	}
	return false
}

func (s *gameState) anyoneCanPlay() bool {
	for i := range s.players {
		if s.hasLegalMove(i) {
			return true
		}
	}
	return false
}

// LegalMoves lists every tile placement available to player right now,
// regardless of whose turn it is. It never mutates state.
func (e *Engine) LegalMoves(player int) ([]Move, error) {
	if e.state == nil {
		return nil, newRuleError(CodeNoGame, "no match in progress")
	}
	if player < 0 || player >= len(e.state.players) {
		return nil, newRuleError(CodeUnknownPlayer, fmt.Sprintf("no player %d", player))
	}
	return e.state.legalMoves(player), nil
}

// checkActor guards every action: phase first, then turn ownership.
func (e *Engine) checkActor(player int) error {
	s := e.state
	switch {
	case s == nil:
		return newRuleError(CodeNoGame, "no match in progress")
	case s.matchOver:
		return newRuleError(CodeMatchOver, "match is over")
	case s.roundOver:
		return newRuleError(CodeRoundOver, "round is over")
	case player < 0 || player >= len(s.players):
		return newRuleError(CodeUnknownPlayer, fmt.Sprintf("no player %d", player))
	case player != s.current:
		return newRuleError(CodeNotYourTurn, fmt.Sprintf("it is P%d's turn", s.current))
	}
	return nil
}

// canContinue reports whether an extra-plays window is open.
func (s *gameState) canContinue() bool {
	return s.rules.AllowMultipleAfterSatisfy && s.turn.doubleSatisfied
}

// checkPlay validates a placement without applying it.
func (e *Engine) checkPlay(player int, tileID string, target TrainKey) (Tile, error) {
	if err := e.checkActor(player); err != nil {
		return Tile{}, err
	}
	s := e.state
	tile, ok := findTile(s.players[player].hand, tileID)
	if !ok {
		return Tile{}, newRuleError(CodeTileNotInHand, fmt.Sprintf("tile %s is not in P%d's hand", tileID, player))
	}
	if _, ok := s.train(target); !ok {
		return Tile{}, newRuleError(CodeBadTarget, fmt.Sprintf("bad target %+v", target))
	}
	if !s.isPlayable(player, target) {
		return Tile{}, newRuleError(CodeTrainNotPlayable, fmt.Sprintf("can't play on %s right now", target.Label()))
	}
	if s.pending == nil && s.turn.played && !s.canContinue() {
		return Tile{}, newRuleError(CodeOneMovePerTurn, "one move per turn")
	}
	if end := s.requiredEnd(target); !tile.Matches(end) {
		return Tile{}, newRuleError(CodeTileMismatch, fmt.Sprintf("%s doesn't match end %d on %s", tile, end, target.Label()))
	}
	return tile, nil
}

// CanDraw reports whether Draw would be accepted for player.
func (e *Engine) CanDraw(player int) error {
	if err := e.checkActor(player); err != nil {
		return err
	}
	s := e.state
	switch {
	case len(s.deck) == 0:
		return newRuleError(CodeBoneyardEmpty, "boneyard is empty")
	case s.turn.drawn:
		return newRuleError(CodeAlreadyDrew, "already drew this turn")
	case s.pending == nil && s.hasLegalMove(player):
		return newRuleError(CodeMustPlay, "a playable move exists; play instead of drawing")
	}
	return nil
}

// CanPass reports whether Pass would be accepted for player.
func (e *Engine) CanPass(player int) error {
	if err := e.checkActor(player); err != nil {
		return err
	}
	s := e.state
	if s.pending == nil && s.turn.played {
		return nil
	}
	if s.hasLegalMove(player) {
		if s.pending != nil {
			return newRuleError(CodeMustSatisfyDouble, "you must satisfy the double (you have a move)")
		}
		return newRuleError(CodePassHasMove, "a playable move exists; you cannot pass")
	}
	if len(s.deck) > 0 && !s.turn.drawn {
		if s.pending != nil {
			return newRuleError(CodePassCanDraw, "you can still draw to try to satisfy the double")
		}
		return newRuleError(CodePassCanDraw, "you can still draw; you cannot pass")
	}
	return nil
}

// Actions lists every action player could submit now that the engine
// would accept. It is empty when it is not player's turn.
func (e *Engine) Actions(player int) []Action {
	if e.checkActor(player) != nil {
		return nil
	}
	var actions []Action
	for _, m := range e.state.legalMoves(player) {
		if _, err := e.checkPlay(player, m.TileID, m.Target); err == nil {
			actions = append(actions, Action{Kind: ActionPlay, Move: m})
		}
	}
	if e.CanDraw(player) == nil {
		actions = append(actions, Action{Kind: ActionDraw})
	}
	if e.CanPass(player) == nil {
		actions = append(actions, Action{Kind: ActionPass})
	}
	return actions
}
