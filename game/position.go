package game

// Position is a cell on the grid. Cells are only comparable through a
// Distancer; Manhattan distance is used for sensing, never for planning.
type Position struct {
	X, Y int
}

func (p Position) Add(a Action) Position {
	dx, dy := a.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Configuration is where an agent stands and which way it is heading.
// Progress is the fraction of the step from Pos towards Pos.Add(Dir) already
// covered; agents slower than one cell per move spend turns between cells.
type Configuration struct {
	Pos      Position
	Dir      Action
	Progress float64
}

// Aligned reports whether the agent sits exactly on a cell.
func (c Configuration) Aligned() bool {
	return c.Progress == 0
}

// AgentState is the observation of one agent for a single turn.
type AgentState struct {
	Start       Position
	Config      Configuration
	Known       bool // false when the agent is outside sensor range
	IsPacman    bool // on enemy territory, carrying and capturable
	ScaredTimer int
	Carrying    int
	Returned    int

	carried []Position
}

// Position returns the agent's cell, or false when it is not visible.
func (s AgentState) Position() (Position, bool) {
	if !s.Known {
		return Position{}, false
	}
	return s.Config.Pos, true
}

func (s AgentState) IsScared() bool {
	return s.ScaredTimer > 0
}

func (s AgentState) copy() AgentState {
	c := s
	c.carried = append([]Position(nil), s.carried...)
	return c
}
