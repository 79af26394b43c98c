package game

// Rules holds the tunable parameters of a capture match.
type Rules interface {
	// ScaredTime is how many of its own moves an agent stays scared after
	// an opponent eats a capsule.
	ScaredTime() int
	// SightRange is the Manhattan radius within which opponents are visible.
	SightRange() int
	// MaxTurns bounds the total number of agent moves in a match.
	MaxTurns() int
	// Speed is the fraction of a cell an agent covers per move, in (0, 1].
	Speed(agent int) float64
}
