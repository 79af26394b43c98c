package game

// Team identifies one side of the board. Red owns the left half.
type Team int

const (
	Red Team = iota
	Blue
)

func (t Team) Opponent() Team {
	if t == Red {
		return Blue
	}
	return Red
}

func (t Team) String() string {
	if t == Red {
		return "red"
	}
	return "blue"
}

// TeamOfIndex maps an agent index to its team: even indices are red.
func TeamOfIndex(agent int) Team {
	if agent%2 == 0 {
		return Red
	}
	return Blue
}
