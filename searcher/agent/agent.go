package agent

import "capture/game"

type Agent interface {
	// Index is the agent's fixed index in the match.
	Index() int
	// RegisterInitialState is called once before the first turn.
	RegisterInitialState(state game.State)
	// ChooseAction returns one legal action for the current turn.
	ChooseAction(state game.State) game.Action
}

// Decider is implemented by agents that can explain their choice.
type Decider interface {
	Agent
	Decide(state game.State) Decision
}
