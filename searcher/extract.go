package searcher

import (
	"fmt"
	"math"

	"capture/game"
)

// Extractor computes feature vectors for one agent playing one role.
type Extractor struct {
	Role      Role
	Agent     int
	Distancer game.Distancer
}

// Successor returns the state after agent plays action. If the agent ends
// up between cells, only half a step was taken and the action is applied
// once more so distances are measured from a whole cell.
func Successor(state game.State, agent int, action game.Action) game.State {
	successor := state.GenerateSuccessor(agent, action)
	if !successor.AgentState(agent).Config.Aligned() {
		return successor.GenerateSuccessor(agent, action)
	}
	return successor
}

// Extract returns the feature vector of playing action in state.
func (e Extractor) Extract(state game.State, action game.Action) Features {
	features, _ := e.ExtractWithMode(state, action)
	return features
}

// Mode returns the mode Extract would use for action in state.
func (e Extractor) Mode(state game.State, action game.Action) Mode {
	successor := Successor(state, e.Agent, action)
	return e.Role.mode(NewView(state, e.Agent), NewView(successor, e.Agent))
}

func (e Extractor) ExtractWithMode(state game.State, action game.Action) (Features, Mode) {
	successor := Successor(state, e.Agent, action)
	current := NewView(state, e.Agent)
	next := NewView(successor, e.Agent)

	me := successor.AgentState(e.Agent)
	pos, ok := me.Position()
	if !ok {
		panic(fmt.Sprintf("agent %d cannot see itself", e.Agent))
	}

	mode := e.Role.mode(current, next)
	b := newFeatureBuilder()
	b.set(Fear, e.fear(next, me, pos))

	switch mode {
	case Offense:
		food := next.FoodToEat()
		b.set(OnDefense, 0)
		b.set(SuccessorScore, float64(len(food)))
		b.set(NumInvaders, 0)
		if d, ok := nearest(e.Distancer, pos, food); ok {
			b.set(ObjectiveDistance, float64(d))
		}
		if action == game.Stop {
			b.set(Stopped, 1)
		}
	default:
		invaders := next.Invaders()
		b.set(OnDefense, 1)
		b.set(SuccessorScore, 0)
		b.set(NumInvaders, float64(len(invaders)))
		b.set(ObjectiveDistance, float64(e.guardDistance(next, pos, invaders)))
		// on_defense stays set even while this agent is across the border
		if action == game.Stop {
			b.set(Stopped, 0)
		}
	}
	return b.build(), mode
}

// fear grows as the nearest visible capturing ghost closes in. It is zero
// unless the agent is a carrier on enemy ground.
func (e Extractor) fear(v View, me game.AgentState, pos game.Position) float64 {
	if !me.IsPacman {
		return 0
	}
	d, ok := nearest(e.Distancer, pos, v.Threats())
	if !ok {
		return 0
	}
	if d == 0 {
		return MaxFear
	}
	return 1 / float64(d)
}

// guardDistance is the distance to the first non-empty target set by
// priority: invaders, then own capsules for roles guarding them, then own food.
func (e Extractor) guardDistance(v View, pos game.Position, invaders []game.Position) int {
	targets := [][]game.Position{invaders}
	if e.Role.guardsCapsules() {
		targets = append(targets, v.CapsulesToDefend())
	}
	targets = append(targets, v.FoodToDefend())

	for _, cells := range targets {
		if d, ok := nearest(e.Distancer, pos, cells); ok {
			return d
		}
	}
	panic(fmt.Sprintf("agent %d has nothing left to defend", e.Agent))
}

// nearest returns the smallest maze distance from pos to any of cells, or
// false when cells is empty.
func nearest(distancer game.Distancer, pos game.Position, cells []game.Position) (int, bool) {
	best := math.MaxInt
	for _, c := range cells {
		if d := distancer.Distance(pos, c); d < best {
			best = d
		}
	}
	return best, len(cells) > 0
}
