package engine

import (
	"fmt"
	"slices"
)

// Tile is a single domino. A and B are unordered until the tile is placed.
type Tile struct {
	ID string
	A  int
	B  int
}

// NoEnd marks a train that has not been seeded yet.
const NoEnd = -1

// TrainKind tags a TrainKey. The zero value is deliberately invalid.
type TrainKind uint8

const (
	HubTrain TrainKind = iota + 1
	PlayerTrain
)

// TrainKey identifies a train: the shared hub or one player's train.
// It doubles as the play target.
type TrainKey struct {
	Kind  TrainKind
	Owner int // seat index, only meaningful for PlayerTrain
}

// HubKey returns the key of the hub (Mexican) train.
func HubKey() TrainKey {
	return TrainKey{Kind: HubTrain}
}

// PlayerKey returns the key of the given player's train.
func PlayerKey(player int) TrainKey {
	return TrainKey{Kind: PlayerTrain, Owner: player}
}

// IsHub reports whether the key names the hub train.
func (k TrainKey) IsHub() bool {
	return k.Kind == HubTrain
}

func (k TrainKey) String() string {
	switch k.Kind {
	case HubTrain:
		return "MEX"
	case PlayerTrain:
		return fmt.Sprintf("P%d", k.Owner)
	}
	return "invalid"
}

// Label is the human-readable train name used in the event log.
func (k TrainKey) Label() string {
	if k.Kind == HubTrain {
		return "Mexican Train"
	}
	return fmt.Sprintf("P%d's Train", k.Owner)
}

// PendingDouble is the obligation created by playing a double: the next
// placement anywhere must be on Train and match Pip.
type PendingDouble struct {
	Train TrainKey
	Pip   int
}

// Move is a candidate placement of a hand tile on a train.
type Move struct {
	TileID string
	Tile   Tile
	Target TrainKey
}

// ActionKind selects what an Action does.
type ActionKind uint8

const (
	ActionPlay ActionKind = iota
	ActionDraw
	ActionPass
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlay:
		return "play"
	case ActionDraw:
		return "draw"
	case ActionPass:
		return "pass"
	}
	return "unknown"
}

// Action is one turn step a driver can submit. Move is only set for ActionPlay.
type Action struct {
	Kind ActionKind
	Move Move
}

// RoundAdd is one player's line of a round summary.
type RoundAdd struct {
	Player int
	Added  int
	Total  int
}

// Standing is a player's cumulative score in a ranking.
type Standing struct {
	Player int
	Score  int
}

// RoundSummary describes how the last round ended.
type RoundSummary struct {
	Reason  string
	Round   int
	Winners []int // lowest pips added this round, ties included
	Adds    []RoundAdd
	Ranking []Standing // ascending cumulative score
}

func (r *RoundSummary) clone() *RoundSummary {
	if r == nil {
		return nil
	}
	out := *r
	out.Winners = slices.Clone(r.Winners)
	out.Adds = slices.Clone(r.Adds)
	out.Ranking = slices.Clone(r.Ranking)
	return &out
}

type trainState struct {
	owner   TrainKey
	tiles   []Tile
	open    bool
	openEnd int
}

type playerState struct {
	id    int
	name  string
	hand  []Tile
	train trainState
	score int
}

// turnFlags is the sub-state of the current turn. Played and drawn are
// independent because a player may draw after laying a double.
type turnFlags struct {
	played          bool
	drawn           bool
	doubleSatisfied bool
}

// gameState is the engine-owned aggregate. Slices are only ever appended to
// or replaced, never written below their length, so snapshots may share them.
type gameState struct {
	maxPip      int
	handSize    int
	roundsTotal int
	round       int

	matchOver bool
	roundOver bool

	rules Rules

	deck    []Tile
	players []playerState
	hub     trainState

	current int
	pending *PendingDouble
	turn    turnFlags

	log         []string
	lastSummary *RoundSummary
	roundResult string
}

// clone creates a deep copy for search.
func (s *gameState) clone() *gameState {
	c := *s
	c.deck = slices.Clone(s.deck)
	c.players = make([]playerState, len(s.players))
	for i, p := range s.players {
		c.players[i] = p
		c.players[i].hand = slices.Clone(p.hand)
		c.players[i].train.tiles = slices.Clone(p.train.tiles)
	}
	c.hub.tiles = slices.Clone(s.hub.tiles)
	if s.pending != nil {
		pd := *s.pending
		c.pending = &pd
	}
	c.log = slices.Clone(s.log)
	c.lastSummary = s.lastSummary.clone()
	return &c
}

// train resolves a key to the live train, reporting false for malformed keys.
func (s *gameState) train(key TrainKey) (*trainState, bool) {
	switch key.Kind {
	case HubTrain:
		return &s.hub, true
	case PlayerTrain:
		if key.Owner < 0 || key.Owner >= len(s.players) {
			return nil, false
		}
		return &s.players[key.Owner].train, true
	}
	return nil, false
}

// tileCount sums every container; it must always equal TotalTiles(maxPip).
func (s *gameState) tileCount() int {
	n := len(s.deck) + len(s.hub.tiles)
	for _, p := range s.players {
		n += len(p.hand) + len(p.train.tiles)
	}
	return n
}

// handWithout returns a new hand slice lacking the tile with the given id.
func handWithout(hand []Tile, id string) []Tile {
	out := make([]Tile, 0, len(hand))
	for _, t := range hand {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func findTile(hand []Tile, id string) (Tile, bool) {
	for _, t := range hand {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}
