package engine

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Engine owns one match. It is not safe for concurrent use; drivers issue
// one action at a time and read state back through snapshots.
type Engine struct {
	cfg    Config
	rng    *rand.Rand
	logger *zap.Logger
	state  *gameState
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger mirrors every event-log line to logger at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSeed makes shuffles and tile identities reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// New validates cfg and returns an engine ready for NewGame.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.cfg.PlayerNames = append([]string(nil), cfg.PlayerNames...)
	return e, nil
}

// Config returns the match configuration.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.PlayerNames = append([]string(nil), e.cfg.PlayerNames...)
	return cfg
}

// NewGame discards any match in progress and deals round one.
func (e *Engine) NewGame() (Snapshot, error) {
	players := make([]playerState, e.cfg.PlayerCount)
	for i := range players {
		players[i] = playerState{id: i, name: e.cfg.playerName(i)}
	}
	e.state = &gameState{
		maxPip:      e.cfg.MaxPip,
		handSize:    e.cfg.HandSize,
		roundsTotal: e.cfg.RoundsTotal,
		round:       1,
		rules:       e.cfg.Rules,
		players:     players,
	}
	e.startRound()
	return e.State(), nil
}

// StartNextRound deals the following round once the current one has ended.
func (e *Engine) StartNextRound() (Snapshot, error) {
	s := e.state
	switch {
	case s == nil:
		return Snapshot{}, newRuleError(CodeNoGame, "no match in progress")
	case s.matchOver:
		return e.State(), newRuleError(CodeMatchOver, "match is over")
	case !s.roundOver:
		return e.State(), newRuleError(CodeRoundInProgress, fmt.Sprintf("round %d is still being played", s.round))
	}
	s.round++
	if s.round > s.roundsTotal {
		s.matchOver = true
		return e.State(), nil
	}
	e.startRound()
	return e.State(), nil
}

// State returns a read-only view of the current game.
func (e *Engine) State() Snapshot {
	if e.state == nil {
		return Snapshot{}
	}
	return newSnapshot(e.state)
}

// Clone returns an independent engine at the same position. The clone's
// random source is seeded from e's, so e's later shuffles shift; use
// CloneWithRand to leave e untouched.
func (e *Engine) Clone() *Engine {
	return e.CloneWithRand(rand.New(rand.NewSource(e.rng.Int63())))
}

// CloneWithRand is Clone with the clone drawing from rng. e's own random
// source is not read.
func (e *Engine) CloneWithRand(rng *rand.Rand) *Engine {
	c := &Engine{
		cfg:    e.Config(),
		rng:    rng,
		logger: zap.NewNop(),
	}
	if e.state != nil {
		c.state = e.state.clone()
	}
	return c
}

// Determinize re-deals every tile hidden from viewer (other hands and the
// boneyard) at random, keeping each container's size. Used on clones only.
func (e *Engine) Determinize(viewer int, rng *rand.Rand) {
	s := e.state
	if s == nil {
		return
	}
	hidden := make([]Tile, 0, len(s.deck)+len(s.players)*s.handSize)
	hidden = append(hidden, s.deck...)
	for i, p := range s.players {
		if i != viewer {
			hidden = append(hidden, p.hand...)
		}
	}
	Shuffle(hidden, rng)

	next := 0
	take := func(n int) []Tile {
		out := make([]Tile, n)
		copy(out, hidden[next:next+n])
		next += n
		return out
	}
	for i := range s.players {
		if i != viewer {
			s.players[i].hand = take(len(s.players[i].hand))
		}
	}
	s.deck = take(len(s.deck))
}

// record appends a line to the game log and mirrors it to the logger.
func (e *Engine) record(msg string, fields ...zap.Field) {
	s := e.state
	s.log = append(s.log, msg)
	if ce := e.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(append(fields, zap.Int("round", s.round))...)
	}
}
