package engine

import (
	"math/rand"
	"testing"
)

// playMatch drives a whole match with random accepted actions and calls
// check after every step.
func playMatch(t *testing.T, cfg Config, seed int64, check func(*Engine)) Snapshot {
	t.Helper()
	e, err := New(cfg, WithSeed(seed))
	if err != nil {
		t.Fatal(err)
	}
	st, err := e.NewGame()
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))

	for steps := 0; !st.MatchOver(); steps++ {
		if steps > 20000 {
			t.Fatalf("seed %d: match did not finish", seed)
		}
		if st.RoundOver() {
			if st, err = e.StartNextRound(); err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
			check(e)
			continue
		}
		cur := st.CurrentPlayer()
		actions := e.Actions(cur)
		if len(actions) == 0 {
			t.Fatalf("seed %d: P%d has no accepted action\n%v", seed, cur, st.Log())
		}
		if st, err = e.Apply(cur, actions[rng.Intn(len(actions))]); err != nil {
			t.Fatalf("seed %d: accepted action rejected: %v", seed, err)
		}
		check(e)
	}
	return st
}

func rulesVariants() map[string]Rules {
	chaos, _ := Preset(PresetChaos)
	lenient := DefaultRules()
	lenient.UnsatisfiedDoubleEndsRound = false
	lenient.OpenTrainOnNoMove = false
	loose := DefaultRules()
	loose.DoubleMustBeSatisfied = false
	loose.StartDoubleDescending = false
	bare := Rules{}
	return map[string]Rules{
		"standard": DefaultRules(),
		"chaos":    chaos,
		"lenient":  lenient,
		"loose":    loose,
		"bare":     bare,
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	for name, rules := range rulesVariants() {
		t.Run(name, func(t *testing.T) {
			cfg := Config{MaxPip: 6, PlayerCount: 3, HandSize: 7, RoundsTotal: 4, Rules: rules}
			total := TotalTiles(cfg.MaxPip)

			for seed := int64(1); seed <= 30; seed++ {
				check := func(e *Engine) {
					s := e.state
					if n := s.tileCount(); n != total {
						t.Fatalf("seed %d: %d tiles, want %d", seed, n, total)
					}
					if s.pending != nil {
						tr, ok := s.train(s.pending.Train)
						if !ok || len(tr.tiles) == 0 {
							t.Fatalf("seed %d: pending names empty train", seed)
						}
						last := tr.tiles[len(tr.tiles)-1]
						if !last.IsDouble() || last.A != s.pending.Pip {
							t.Fatalf("seed %d: pending %+v but last tile %s", seed, *s.pending, last)
						}
					}
					if !s.roundOver {
						for i, p := range s.players {
							if len(p.train.tiles) > 0 {
								last := p.train.tiles[len(p.train.tiles)-1]
								if _, ok := last.OtherEnd(p.train.openEnd); !ok {
									t.Fatalf("seed %d: P%d open end %d not on %s", seed, i, p.train.openEnd, last)
								}
							}
						}
					}
					if s.roundOver && s.lastSummary != nil {
						sum := 0
						for _, a := range s.lastSummary.Adds {
							sum += a.Added
						}
						hands := 0
						for _, p := range s.players {
							hands += PipSum(p.hand)
						}
						if sum != hands {
							t.Fatalf("seed %d: adds %d != hand pips %d", seed, sum, hands)
						}
					}
				}
				st := playMatch(t, cfg, seed, check)
				if len(st.MatchWinners()) == 0 {
					t.Fatalf("seed %d: no match winner", seed)
				}
			}
		})
	}
}

// Every move offered at the start of a turn must be accepted.
func TestLegalMovesAreAccepted(t *testing.T) {
	cfg := Config{MaxPip: 9, PlayerCount: 4, HandSize: 8, RoundsTotal: 2, Rules: DefaultRules()}
	for seed := int64(1); seed <= 20; seed++ {
		check := func(e *Engine) {
			s := e.state
			if s.roundOver || s.turn != (turnFlags{}) {
				return
			}
			moves, err := e.LegalMoves(s.current)
			if err != nil {
				t.Fatal(err)
			}
			for _, m := range moves {
				c := e.Clone()
				if _, err := c.PlayTile(s.current, m.TileID, m.Target); err != nil {
					t.Fatalf("seed %d: offered %s on %s rejected: %v", seed, m.Tile, m.Target, err)
				}
			}
		}
		playMatch(t, cfg, seed, check)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	e, err := New(DefaultConfig(), WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	before, _ := e.NewGame()
	cur := before.CurrentPlayer()
	handBefore := before.Player(cur).Hand()
	logBefore := len(before.Log())

	// Mutating copies handed out must not reach the engine.
	hand := before.Player(cur).Hand()
	hand[0] = Tile{ID: "forged", A: 99, B: 99}
	before.Log()[0] = "forged"
	if e.State().Player(cur).Hand()[0].ID == "forged" || e.State().Log()[0] == "forged" {
		t.Fatal("accessor leaked engine storage")
	}

	// Acting must not change an earlier snapshot.
	actions := e.Actions(cur)
	if _, err := e.Apply(cur, actions[0]); err != nil {
		t.Fatal(err)
	}
	if len(before.Log()) != logBefore {
		t.Error("old snapshot log grew")
	}
	if got := before.Player(cur).Hand(); len(got) != len(handBefore) || got[0] != handBefore[0] {
		t.Error("old snapshot hand changed")
	}
	if before.TurnPhase() != TurnNotActed {
		t.Error("old snapshot turn flags changed")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	e, err := New(DefaultConfig(), WithSeed(8))
	if err != nil {
		t.Fatal(err)
	}
	st, _ := e.NewGame()
	cur := st.CurrentPlayer()

	c := e.Clone()
	actions := c.Actions(cur)
	if _, err := c.Apply(cur, actions[0]); err != nil {
		t.Fatal(err)
	}
	if len(e.State().Log()) != len(st.Log()) || e.State().Player(cur).HandSize() != st.Player(cur).HandSize() {
		t.Error("acting on a clone changed the original")
	}
}

func TestCloneWithRandLeavesSource(t *testing.T) {
	a, _ := New(DefaultConfig(), WithSeed(8))
	b, _ := New(DefaultConfig(), WithSeed(8))
	a.NewGame()
	b.NewGame()

	c := a.CloneWithRand(rand.New(rand.NewSource(1)))
	c.Determinize(0, rand.New(rand.NewSource(2)))
	if got, want := a.rng.Int63(), b.rng.Int63(); got != want {
		t.Errorf("source advanced: %d, want %d", got, want)
	}
	if c.rng == a.rng {
		t.Error("clone shares the original source")
	}
}

func BenchmarkRandomMatch(b *testing.B) {
	cfg := DefaultConfig()
	cfg.RoundsTotal = 1
	for i := 0; i < b.N; i++ {
		e, _ := New(cfg, WithSeed(int64(i)))
		st, _ := e.NewGame()
		rng := rand.New(rand.NewSource(int64(i)))
		for !st.RoundOver() {
			cur := st.CurrentPlayer()
			actions := e.Actions(cur)
			st, _ = e.Apply(cur, actions[rng.Intn(len(actions))])
		}
	}
}
