package searcher

import "capture/game"

// View reads a State from one team's perspective.
type View struct {
	State game.State
	Team  game.Team
}

func NewView(state game.State, agent int) View {
	return View{State: state, Team: state.TeamOf(agent)}
}

// FoodToEat is the opponent food this team may eat.
func (v View) FoodToEat() []game.Position {
	return v.State.Food(v.Team.Opponent())
}

// FoodToDefend is the food on this team's side.
func (v View) FoodToDefend() []game.Position {
	return v.State.Food(v.Team)
}

func (v View) CapsulesToDefend() []game.Position {
	return v.State.Capsules(v.Team)
}

// Score is positive when this team is ahead.
func (v View) Score() int {
	if v.Team == game.Red {
		return v.State.Score()
	}
	return -v.State.Score()
}

func (v View) Opponents() []int {
	return v.State.Opponents(v.Team)
}

// Invaders returns the positions of visible opponents on this team's side.
func (v View) Invaders() []game.Position {
	invaders := []game.Position{}
	for _, o := range v.Opponents() {
		s := v.State.AgentState(o)
		if pos, ok := s.Position(); ok && s.IsPacman {
			invaders = append(invaders, pos)
		}
	}
	return invaders
}

// Threats returns the positions of visible opponents that can capture one of
// this team's carriers: ghosts that are not scared.
func (v View) Threats() []game.Position {
	threats := []game.Position{}
	for _, o := range v.Opponents() {
		s := v.State.AgentState(o)
		if pos, ok := s.Position(); ok && !s.IsPacman && !s.IsScared() {
			threats = append(threats, pos)
		}
	}
	return threats
}
