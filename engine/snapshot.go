package engine

import "slices"

// TurnPhase summarizes the current turn's flags.
type TurnPhase uint8

const (
	TurnNotActed TurnPhase = iota
	TurnDrawn
	TurnPlayed
	TurnPlayedMaySatisfyMore
)

func (p TurnPhase) String() string {
	switch p {
	case TurnNotActed:
		return "not-acted"
	case TurnDrawn:
		return "drawn"
	case TurnPlayed:
		return "played"
	case TurnPlayedMaySatisfyMore:
		return "played-may-continue"
	}
	return "unknown"
}

// Snapshot is a read-only view of the game at one moment. It shares tile
// storage with the engine, which only ever appends or replaces slices, and
// every accessor hands out copies.
type Snapshot struct {
	s *gameState
}

func newSnapshot(live *gameState) Snapshot {
	v := *live
	v.players = slices.Clone(live.players)
	if live.pending != nil {
		pd := *live.pending
		v.pending = &pd
	}
	return Snapshot{s: &v}
}

// Valid is false for the zero Snapshot returned before NewGame.
func (v Snapshot) Valid() bool {
	return v.s != nil
}

// Round is the 1-based round number. It stays at the last round once the match is over.
func (v Snapshot) Round() int {
	return v.s.round
}

// RoundsTotal is how many rounds the match lasts.
func (v Snapshot) RoundsTotal() int {
	return v.s.roundsTotal
}

// MaxPip is N for the double-N set.
func (v Snapshot) MaxPip() int {
	return v.s.maxPip
}

// MatchOver reports whether every round has been scored.
func (v Snapshot) MatchOver() bool {
	return v.s.matchOver
}

// RoundOver is true between a round ending and StartNextRound.
func (v Snapshot) RoundOver() bool {
	return v.s.roundOver
}

// Rules are the toggles frozen into the current round.
func (v Snapshot) Rules() Rules {
	return v.s.rules
}

// CurrentPlayer is the seat to act.
func (v Snapshot) CurrentPlayer() int {
	return v.s.current
}

// NumPlayers is the seat count.
func (v Snapshot) NumPlayers() int {
	return len(v.s.players)
}

// DeckSize is the number of tiles left in the boneyard.
func (v Snapshot) DeckSize() int {
	return len(v.s.deck)
}

// Deck returns the boneyard; the last element is drawn next.
func (v Snapshot) Deck() []Tile {
	return slices.Clone(v.s.deck)
}

// Pending reports the outstanding double obligation, if any.
func (v Snapshot) Pending() (PendingDouble, bool) {
	if v.s.pending == nil {
		return PendingDouble{}, false
	}
	return *v.s.pending, true
}

// TurnHasPlayed reports whether the current player placed a tile this turn.
func (v Snapshot) TurnHasPlayed() bool {
	return v.s.turn.played
}

// TurnHasDrawn reports whether the current player drew this turn.
func (v Snapshot) TurnHasDrawn() bool {
	return v.s.turn.drawn
}

// DoubleSatisfiedThisTurn reports whether a play this turn cleared an obligation.
func (v Snapshot) DoubleSatisfiedThisTurn() bool {
	return v.s.turn.doubleSatisfied
}

// TurnPhase folds the turn flags into one value. A draw after a play
// reports as played.
func (v Snapshot) TurnPhase() TurnPhase {
	t := v.s.turn
	switch {
	case t.played && v.s.pending == nil && v.s.canContinue():
		return TurnPlayedMaySatisfyMore
	case t.played:
		return TurnPlayed
	case t.drawn:
		return TurnDrawn
	}
	return TurnNotActed
}

// Player returns seat i. It panics when i is out of range.
func (v Snapshot) Player(i int) PlayerView {
	return PlayerView{p: v.s.players[i]}
}

// Players returns every seat in order.
func (v Snapshot) Players() []PlayerView {
	out := make([]PlayerView, len(v.s.players))
	for i, p := range v.s.players {
		out[i] = PlayerView{p: p}
	}
	return out
}

// Hub is the shared Mexican train.
func (v Snapshot) Hub() TrainView {
	return TrainView{t: v.s.hub}
}

// Train looks a train up by key.
func (v Snapshot) Train(key TrainKey) (TrainView, bool) {
	tr, ok := v.s.train(key)
	if !ok {
		return TrainView{}, false
	}
	return TrainView{t: *tr}, true
}

// Log returns the human-readable event log.
func (v Snapshot) Log() []string {
	return slices.Clone(v.s.log)
}

// RoundResult is the text of the last round end, empty while a round runs.
func (v Snapshot) RoundResult() string {
	return v.s.roundResult
}

// Summary returns the last round's summary, or nil while a round runs.
func (v Snapshot) Summary() *RoundSummary {
	return v.s.lastSummary.clone()
}

// Ranking orders players by ascending cumulative score.
func (v Snapshot) Ranking() []Standing {
	return v.s.ranking()
}

// MatchWinners are the players tied for the lowest cumulative score.
func (v Snapshot) MatchWinners() []int {
	return v.s.matchWinners()
}

// TileCount totals hands, trains and boneyard.
func (v Snapshot) TileCount() int {
	return v.s.tileCount()
}

// LegalMoves evaluates moves against this snapshot rather than the live game.
func (v Snapshot) LegalMoves(player int) []Move {
	if player < 0 || player >= len(v.s.players) {
		return nil
	}
	return v.s.legalMoves(player)
}

// PlayerView is a read-only player.
type PlayerView struct {
	p playerState
}

// ID is the seat index.
func (v PlayerView) ID() int {
	return v.p.id
}

// Name is the display name, "P<seat>" unless configured.
func (v PlayerView) Name() string {
	return v.p.name
}

// Score is the cumulative pip total from finished rounds.
func (v PlayerView) Score() int {
	return v.p.score
}

func (v PlayerView) HandSize() int {
	return len(v.p.hand)
}

// Hand returns a copy of the tiles held.
func (v PlayerView) Hand() []Tile {
	return slices.Clone(v.p.hand)
}

// HandPips sums the pips in hand, the round penalty if it ended now.
func (v PlayerView) HandPips() int {
	return PipSum(v.p.hand)
}

// Train is the player's personal train.
func (v PlayerView) Train() TrainView {
	return TrainView{t: v.p.train}
}

// TrainView is a read-only train.
type TrainView struct {
	t trainState
}

func (v TrainView) Key() TrainKey {
	return v.t.owner
}

// Open reports whether other players may play on the train.
func (v TrainView) Open() bool {
	return v.t.open
}

// OpenEnd is the pip the next tile must match.
func (v TrainView) OpenEnd() int {
	return v.t.openEnd
}

func (v TrainView) Len() int {
	return len(v.t.tiles)
}

// Tiles returns a copy of the train from the hub outward.
func (v TrainView) Tiles() []Tile {
	return slices.Clone(v.t.tiles)
}

// Last returns the most recently placed tile.
func (v TrainView) Last() (Tile, bool) {
	if len(v.t.tiles) == 0 {
		return Tile{}, false
	}
	return v.t.tiles[len(v.t.tiles)-1], true
}
