package mcts

import (
	"math/rand"
	"time"

	"github.com/signalnine/double12/engine"
)

const (
	DefaultExplorationParam = 1.414 // sqrt(2)
	DefaultDeterminizations = 4
	maxPlayoutSteps         = 2000
)

// SearchParams tunes a search.
type SearchParams struct {
	Iterations       int
	ExplorationParam float64
	// Determinizations is how many re-deals of the hidden tiles are searched;
	// visit counts are summed across them.
	Determinizations int
	Rand             *rand.Rand
}

// Search picks an action for the player to move using default parameters.
func Search(e *engine.Engine, iterations int, explorationParam float64) engine.Action {
	return SearchWithParams(e, SearchParams{Iterations: iterations, ExplorationParam: explorationParam})
}

// SearchWithParams runs determinized MCTS from the live engine position.
// Neither the engine's state nor its random source is touched; every
// simulated world draws from params.Rand.
func SearchWithParams(e *engine.Engine, params SearchParams) engine.Action {
	if params.ExplorationParam == 0 {
		params.ExplorationParam = DefaultExplorationParam
	}
	if params.Determinizations <= 0 {
		params.Determinizations = DefaultDeterminizations
	}
	rng := params.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	viewer := e.State().CurrentPlayer()
	actions := e.Actions(viewer)
	switch len(actions) {
	case 0:
		return engine.Action{Kind: engine.ActionPass}
	case 1:
		return actions[0]
	}

	visits := make(map[actionKey]int, len(actions))
	perTree := params.Iterations / params.Determinizations
	if perTree < 1 {
		perTree = 1
	}
	for d := 0; d < params.Determinizations; d++ {
		world := e.CloneWithRand(rand.New(rand.NewSource(rng.Int63())))
		world.Determinize(viewer, rng)
		root := searchTree(world, viewer, perTree, params.ExplorationParam, rng)
		for _, child := range root.children {
			visits[keyOf(child.action)] += child.visits
		}
		root.release()
	}

	best := actions[0]
	bestVisits := -1
	for _, a := range actions {
		if v := visits[keyOf(a)]; v > bestVisits {
			best, bestVisits = a, v
		}
	}
	return best
}

type actionKey struct {
	kind   engine.ActionKind
	tileID string
	target engine.TrainKey
}

func keyOf(a engine.Action) actionKey {
	if a.Kind != engine.ActionPlay {
		return actionKey{kind: a.Kind}
	}
	return actionKey{kind: a.Kind, tileID: a.Move.TileID, target: a.Move.Target}
}

func searchTree(world *engine.Engine, viewer, iterations int, explorationParam float64, rng *rand.Rand) *node {
	root := newNode(world, nil, engine.Action{}, viewer)

	for i := 0; i < iterations; i++ {
		n := root

		// 1. Selection - descend through fully expanded nodes by UCB1
		for !n.terminal() && len(n.untried) == 0 {
			next := n.selectChild(explorationParam)
			if next == nil {
				break
			}
			n = next
		}

		// 2. Expansion - add a new child node
		if !n.terminal() && len(n.untried) > 0 {
			n = expand(n, rng)
		}

		// 3. Simulation - play out randomly to the end of the round
		winners := simulate(n.world, rng)

		// 4. Backpropagation - update statistics
		backpropagate(n, winners)
	}
	return root
}

// expand applies one untried action on a clone of n's world.
func expand(n *node, rng *rand.Rand) *node {
	action := n.takeUntried(rng)
	mover := n.world.State().CurrentPlayer()
	world := n.world.Clone()
	if _, err := world.Apply(mover, action); err != nil {
		// Actions only lists accepted moves; treat a rejection as a dead end.
		return n
	}
	child := newNode(world, n, action, mover)
	n.children = append(n.children, child)
	return child
}

// simulate plays random accepted actions until the round ends and returns
// the players who added the fewest pips. Nil means the playout was cut off.
func simulate(e *engine.Engine, rng *rand.Rand) []int {
	sim := e.Clone()
	st := sim.State()

	for i := 0; i < maxPlayoutSteps && !st.RoundOver(); i++ {
		cur := st.CurrentPlayer()
		actions := sim.Actions(cur)
		if len(actions) == 0 {
			return nil
		}
		var err error
		if st, err = sim.Apply(cur, actions[rng.Intn(len(actions))]); err != nil {
			return nil
		}
	}
	if !st.RoundOver() {
		return nil
	}
	return st.Summary().Winners
}

// backpropagate credits each node's mover with a share of the round win.
func backpropagate(n *node, winners []int) {
	for ; n != nil; n = n.parent {
		n.credit(winners)
	}
}
