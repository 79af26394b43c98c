package game

import "fmt"

// GameState is the reference capture world. It satisfies State; every
// transition returns a fresh copy and leaves the receiver untouched.
type GameState struct {
	Layout *Layout
	Rules  Rules

	agents   []AgentState // indexed by agent
	food     []bool       // indexed like Layout.Food, true while uneaten
	capsules []bool       // indexed like Layout.Capsules
	score    int          // positive favors red
	turn     int          // agent moves played so far
}

// NewGameState places every agent at its start with all items on the board.
func NewGameState(l *Layout, rules Rules) *GameState {
	gs := &GameState{
		Layout:   l,
		Rules:    rules,
		agents:   make([]AgentState, l.NumAgents()),
		food:     make([]bool, len(l.Food)),
		capsules: make([]bool, len(l.Capsules)),
	}
	for i, start := range l.Starts {
		gs.agents[i] = AgentState{
			Start:  start,
			Config: Configuration{Pos: start, Dir: Stop},
			Known:  true,
		}
	}
	for i := range gs.food {
		gs.food[i] = true
	}
	for i := range gs.capsules {
		gs.capsules[i] = true
	}
	return gs
}

func (gs *GameState) Copy() *GameState {
	agents := make([]AgentState, len(gs.agents))
	for i, a := range gs.agents {
		agents[i] = a.copy()
	}
	food := make([]bool, len(gs.food))
	copy(food, gs.food)
	capsules := make([]bool, len(gs.capsules))
	copy(capsules, gs.capsules)

	return &GameState{
		Layout:   gs.Layout, // static
		Rules:    gs.Rules,  // static
		agents:   agents,
		food:     food,
		capsules: capsules,
		score:    gs.score,
		turn:     gs.turn,
	}
}

func (gs *GameState) NumAgents() int {
	return len(gs.agents)
}

func (gs *GameState) Turn() int {
	return gs.turn
}

func (gs *GameState) Score() int {
	return gs.score
}

func (gs *GameState) TeamOf(agent int) Team {
	gs.mustAgent(agent)
	return TeamOfIndex(agent)
}

func (gs *GameState) Opponents(team Team) []int {
	return gs.members(team.Opponent())
}

// Teammates returns the agent indices playing for team.
func (gs *GameState) Teammates(team Team) []int {
	return gs.members(team)
}

func (gs *GameState) members(team Team) []int {
	indices := make([]int, 0, len(gs.agents)/2)
	for i := range gs.agents {
		if TeamOfIndex(i) == team {
			indices = append(indices, i)
		}
	}
	return indices
}

func (gs *GameState) AgentState(agent int) AgentState {
	gs.mustAgent(agent)
	return gs.agents[agent].copy()
}

func (gs *GameState) Food(team Team) []Position {
	return gs.remaining(gs.Layout.Food, gs.food, team)
}

func (gs *GameState) Capsules(team Team) []Position {
	return gs.remaining(gs.Layout.Capsules, gs.capsules, team)
}

func (gs *GameState) remaining(cells []Position, present []bool, team Team) []Position {
	left := []Position{}
	for i, p := range cells {
		if present[i] && gs.Layout.Side(p) == team {
			left = append(left, p)
		}
	}
	return left
}

func (gs *GameState) LegalActions(agent int) []Action {
	gs.mustAgent(agent)
	config := gs.agents[agent].Config
	if !config.Aligned() {
		// Mid-transit agents can only finish the step they started
		return []Action{config.Dir}
	}

	actions := make([]Action, 0, len(Directions)+1)
	for _, dir := range Directions {
		if !gs.Layout.IsWall(config.Pos.Add(dir)) {
			actions = append(actions, dir)
		}
	}
	return append(actions, Stop)
}

func (gs *GameState) isLegal(agent int, action Action) bool {
	for _, legal := range gs.LegalActions(agent) {
		if legal == action {
			return true
		}
	}
	return false
}

// GenerateSuccessor projects action for agent. Unlike Play it accepts a
// finished game.
func (gs *GameState) GenerateSuccessor(agent int, action Action) State {
	return gs.successor(agent, action)
}

// Play applies action for agent and returns the resulting state. It panics
// on an illegal action or once the game is over.
func (gs *GameState) Play(agent int, action Action) *GameState {
	if gs.IsOver() {
		panic("cannot play after the game is over")
	}
	return gs.successor(agent, action)
}

func (gs *GameState) successor(agent int, action Action) *GameState {
	if !gs.isLegal(agent, action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := gs.Copy()
	next.turn++

	if next.move(agent, action) {
		next.consume(agent)
		next.resolveCollisions(agent)
	}

	mover := &next.agents[agent]
	if mover.ScaredTimer > 0 {
		mover.ScaredTimer--
	}
	return next
}

// move advances the agent and reports whether it arrived on a new cell.
func (gs *GameState) move(agent int, action Action) bool {
	a := &gs.agents[agent]
	if action == Stop {
		a.Config.Dir = Stop
		return false
	}

	a.Config.Dir = action
	a.Config.Progress += gs.Rules.Speed(agent)
	if a.Config.Progress < 1-1e-9 {
		return false
	}
	a.Config.Pos = a.Config.Pos.Add(action)
	a.Config.Progress = 0
	return true
}

// consume updates territory, eats items and banks carried food for an agent
// that just arrived on a cell.
func (gs *GameState) consume(agent int) {
	a := &gs.agents[agent]
	team := TeamOfIndex(agent)
	pos := a.Config.Pos

	wasPacman := a.IsPacman
	a.IsPacman = gs.Layout.Side(pos) != team

	if wasPacman && !a.IsPacman && a.Carrying > 0 {
		a.Returned += a.Carrying
		gs.score += sign(team) * a.Carrying
		a.Carrying = 0
		a.carried = nil
	}
	if !a.IsPacman {
		return
	}

	if i := indexOf(gs.Layout.Food, pos); i >= 0 && gs.food[i] {
		gs.food[i] = false
		a.Carrying++
		a.carried = append(a.carried, pos)
	}
	if i := indexOf(gs.Layout.Capsules, pos); i >= 0 && gs.capsules[i] {
		gs.capsules[i] = false
		for _, o := range gs.Opponents(team) {
			gs.agents[o].ScaredTimer = gs.Rules.ScaredTime()
		}
	}
}

func (gs *GameState) resolveCollisions(agent int) {
	mover := &gs.agents[agent]
	for _, o := range gs.Opponents(TeamOfIndex(agent)) {
		other := &gs.agents[o]
		if !other.Known || !other.Config.Aligned() || other.Config.Pos != mover.Config.Pos {
			continue
		}
		switch {
		case mover.IsPacman && !other.IsPacman:
			if other.IsScared() {
				gs.respawn(o)
			} else {
				gs.respawn(agent)
				return
			}
		case !mover.IsPacman && other.IsPacman:
			if mover.IsScared() {
				gs.respawn(agent)
				return
			}
			gs.respawn(o)
		}
	}
}

// respawn sends an agent back to its start and puts its carried food back.
func (gs *GameState) respawn(agent int) {
	a := &gs.agents[agent]
	for _, p := range a.carried {
		if i := indexOf(gs.Layout.Food, p); i >= 0 {
			gs.food[i] = true
		}
	}
	a.Config = Configuration{Pos: a.Start, Dir: Stop}
	a.IsPacman = false
	a.ScaredTimer = 0
	a.Carrying = 0
	a.carried = nil
}

// Observe returns the state as seen by agent: opponents farther than the
// sight range from every teammate have their position hidden.
func (gs *GameState) Observe(agent int) *GameState {
	gs.mustAgent(agent)
	team := TeamOfIndex(agent)
	view := gs.Copy()
	for _, o := range gs.Opponents(team) {
		target := gs.agents[o].Config.Pos
		visible := false
		for _, mate := range gs.Teammates(team) {
			if gs.agents[mate].Config.Pos.Manhattan(target) <= gs.Rules.SightRange() {
				visible = true
				break
			}
		}
		if !visible {
			view.agents[o].Known = false
			view.agents[o].Config = Configuration{}
		}
	}
	return view
}

// IsOver reports whether a team has banked all but MinFood of the opposing
// food, or the turn limit is reached.
func (gs *GameState) IsOver() bool {
	if gs.turn >= gs.Rules.MaxTurns() {
		return true
	}
	for _, team := range []Team{Red, Blue} {
		returned := 0
		for _, i := range gs.members(team) {
			returned += gs.agents[i].Returned
		}
		if returned >= gs.initialFood(team.Opponent())-MinFood {
			return true
		}
	}
	return false
}

func (gs *GameState) initialFood(team Team) int {
	count := 0
	for _, p := range gs.Layout.Food {
		if gs.Layout.Side(p) == team {
			count++
		}
	}
	return count
}

// Winner returns "red", "blue" or "tie" once the game is over, "" before.
func (gs *GameState) Winner() string {
	if !gs.IsOver() {
		return ""
	}
	switch {
	case gs.score > 0:
		return Red.String()
	case gs.score < 0:
		return Blue.String()
	default:
		return "tie"
	}
}

func (gs *GameState) mustAgent(agent int) {
	if agent < 0 || agent >= len(gs.agents) {
		panic(fmt.Sprintf("agent index %d out of range [0, %d)", agent, len(gs.agents)))
	}
}

func sign(team Team) int {
	if team == Red {
		return 1
	}
	return -1
}

func indexOf(cells []Position, p Position) int {
	for i, c := range cells {
		if c == p {
			return i
		}
	}
	return -1
}

// WithScore returns a copy with the score overridden. Used to set up
// scenarios.
func (gs *GameState) WithScore(score int) *GameState {
	next := gs.Copy()
	next.score = score
	return next
}

// WithoutFood returns a copy with the pellets at cells removed, credited to
// no one.
func (gs *GameState) WithoutFood(cells ...Position) *GameState {
	next := gs.Copy()
	for _, p := range cells {
		if i := indexOf(next.Layout.Food, p); i >= 0 {
			next.food[i] = false
		}
	}
	return next
}

// WithAgentAt returns a copy with agent standing on p, territory updated.
func (gs *GameState) WithAgentAt(agent int, p Position) *GameState {
	gs.mustAgent(agent)
	if gs.Layout.IsWall(p) {
		panic(fmt.Sprintf("cannot place agent %d on wall %v", agent, p))
	}
	next := gs.Copy()
	a := &next.agents[agent]
	a.Config = Configuration{Pos: p, Dir: Stop}
	a.IsPacman = next.Layout.Side(p) != TeamOfIndex(agent)
	return next
}

// WithScared returns a copy with agent's scared timer set.
func (gs *GameState) WithScared(agent int, timer int) *GameState {
	gs.mustAgent(agent)
	next := gs.Copy()
	next.agents[agent].ScaredTimer = timer
	return next
}

var _ State = (*GameState)(nil)
