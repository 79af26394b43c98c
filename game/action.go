package game

import "fmt"

// Action represents a single-step move an agent can take on its turn.
type Action int

const (
	Stop Action = iota
	North
	South
	East
	West
)

// Directions lists the movement actions in enumeration order.
var Directions = []Action{North, South, East, West}

var actionNames = map[Action]string{
	Stop:  "Stop",
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Vector returns the unit cell offset of the action. North points to
// increasing Y.
func (a Action) Vector() (dx, dy int) {
	switch a {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
