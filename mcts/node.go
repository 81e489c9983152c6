package mcts

import (
	"math"
	"math/rand"
	"sync"

	"github.com/signalnine/double12/engine"
)

// node is one position in a determinized search tree. Reward is kept from
// the point of view of mover, the seat whose action led here.
type node struct {
	world    *engine.Engine
	action   engine.Action
	mover    int
	parent   *node
	children []*node
	visits   int
	reward   float64
	untried  []engine.Action
}

var nodePool = sync.Pool{
	New: func() any {
		return &node{
			children: make([]*node, 0, 8),
			untried:  make([]engine.Action, 0, 16),
		}
	},
}

// newNode takes a node from the pool and loads the actions open to whoever
// moves next in world.
func newNode(world *engine.Engine, parent *node, action engine.Action, mover int) *node {
	n := nodePool.Get().(*node)
	n.world = world
	n.parent = parent
	n.action = action
	n.mover = mover
	n.children = n.children[:0]
	n.visits = 0
	n.reward = 0
	n.untried = n.untried[:0]
	if st := world.State(); !st.RoundOver() {
		n.untried = append(n.untried, world.Actions(st.CurrentPlayer())...)
	}
	return n
}

// release returns n and its subtree to the pool.
func (n *node) release() {
	for _, c := range n.children {
		c.release()
	}
	n.world = nil
	n.parent = nil
	nodePool.Put(n)
}

// terminal reports whether the round has ended; search never looks past it.
func (n *node) terminal() bool {
	if n.world == nil {
		return true
	}
	st := n.world.State()
	return st.RoundOver() || st.MatchOver()
}

func (n *node) ucb1(c float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	exploit := n.reward / float64(n.visits)
	return exploit + c*math.Sqrt(math.Log(float64(n.parent.visits))/float64(n.visits))
}

// selectChild returns the child with the highest UCB1 score, first on ties.
func (n *node) selectChild(c float64) *node {
	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		if s := child.ucb1(c); best == nil || s > bestScore {
			best, bestScore = child, s
		}
	}
	return best
}

// takeUntried removes a random untried action.
func (n *node) takeUntried(rng *rand.Rand) engine.Action {
	i := rng.Intn(len(n.untried))
	a := n.untried[i]
	last := len(n.untried) - 1
	n.untried[i] = n.untried[last]
	n.untried = n.untried[:last]
	return a
}

// credit records one playout; a shared round win is split evenly.
func (n *node) credit(winners []int) {
	n.visits++
	for _, w := range winners {
		if w == n.mover {
			n.reward += 1 / float64(len(winners))
		}
	}
}
