package game

// State is an immutable snapshot of one turn. Operations on State never
// modify the receiver; GenerateSuccessor always returns a new copy.
type State interface {
	// LegalActions lists the actions available to agent, in a stable order.
	LegalActions(agent int) []Action
	GenerateSuccessor(agent int, action Action) State
	AgentState(agent int) AgentState
	// Food returns the uneaten pellets lying on team's side, i.e. the food
	// that team defends and its opponent may eat.
	Food(team Team) []Position
	// Capsules returns the uneaten capsules lying on team's side.
	Capsules(team Team) []Position
	// Score is positive when red is ahead.
	Score() int
	TeamOf(agent int) Team
	// Opponents returns the agent indices playing against team, in index order.
	Opponents(team Team) []int
}

// Distancer answers shortest path lengths over walkable maze cells, ignoring
// agents. Both positions must lie in the same connected region.
type Distancer interface {
	Distance(a, b Position) int
}

// MinFood is the number of opponent pellets a team may leave uneaten and
// still win the match outright.
const MinFood = 2
