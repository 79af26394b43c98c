package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"capture/game"
	"capture/searcher"
)

const fieldLayout = `
%%%%%%%%%%%%
%1 ..  .. 4%
%  ......o %
% o......  %
%3 ..  .. 2%
%%%%%%%%%%%%`

func newField(t *testing.T) (*game.GameState, game.Distancer) {
	l, err := game.ParseLayout(fieldLayout)
	require.NoError(t, err)
	return game.NewGameState(l, game.NewStandardRules()), game.NewMazeDistancer(l)
}

// stuckState has no legal moves for anyone.
type stuckState struct {
	game.State
}

func (s stuckState) LegalActions(agent int) []game.Action {
	return nil
}

// evaluate scores one candidate the way Decide does.
func evaluate(a *ReflexAgent, state game.State, action game.Action) float64 {
	return searcher.Evaluate(a.extractor.Extract(state, action), a.weights)
}

func TestNewReflexAgent(t *testing.T) {
	t.Run("panics without a distancer", func(t *testing.T) {
		require.Panics(t, func() {
			NewReflexAgent(0, searcher.ScoreAdaptive, nil)
		})
	})

	t.Run("registering the start", func(t *testing.T) {
		gs, d := newField(t)
		a := NewReflexAgent(0, searcher.AlwaysDefend, d)
		a.RegisterInitialState(gs)

		require.Equal(t, 0, a.Index())
		require.Equal(t, searcher.AlwaysDefend, a.Role())
		require.Equal(t, game.Position{X: 1, Y: 4}, a.start)
	})

	t.Run("panics when the start is not visible", func(t *testing.T) {
		gs, d := newField(t)
		a := NewReflexAgent(0, searcher.ScoreAdaptive, d)
		require.Panics(t, func() {
			a.RegisterInitialState(gs.Observe(1))
		}, "Blue cannot see agent 0 from across the field")
	})
}

func TestDecide(t *testing.T) {
	gs, d := newField(t)
	// Invader at (2,3): South and East both close in to distance 1
	tied := gs.WithAgentAt(1, game.Position{X: 2, Y: 3})

	t.Run("choice is always among the best", func(t *testing.T) {
		states := []*game.GameState{
			gs,
			gs.WithScore(10),
			tied,
			gs.WithAgentAt(0, game.Position{X: 7, Y: 3}),
		}
		for _, role := range []searcher.Role{searcher.ScoreAdaptive, searcher.AlwaysDefend, searcher.PriorityDefend} {
			for seed := uint64(0); seed < 10; seed++ {
				a := NewReflexAgent(0, role, d, WithSeed(seed))
				a.RegisterInitialState(gs)
				for _, state := range states {
					decision := a.Decide(state)

					legal := state.LegalActions(0)
					top := evaluate(a, state, legal[0])
					for _, action := range legal {
						score := evaluate(a, state, action)
						require.Equal(t, score, decision.Scores[action])
						if score > top {
							top = score
						}
					}
					for _, action := range decision.Best {
						require.Equal(t, top, decision.Scores[action])
					}
					require.Contains(t, decision.Best, decision.Action)
					require.False(t, decision.Endgame)
				}
			}
		}
	})

	t.Run("ties are broken at random", func(t *testing.T) {
		chosen := map[game.Action]int{}
		for seed := uint64(0); seed < 50; seed++ {
			a := NewReflexAgent(0, searcher.AlwaysDefend, d, WithSeed(seed))
			a.RegisterInitialState(gs)
			decision := a.Decide(tied)
			require.ElementsMatch(t, []game.Action{game.South, game.East}, decision.Best)
			chosen[decision.Action]++
		}
		require.Len(t, chosen, 2, "Both tied actions should be picked over 50 seeds")
	})

	t.Run("same seed, same choices", func(t *testing.T) {
		a := NewReflexAgent(0, searcher.AlwaysDefend, d, WithSeed(42))
		b := NewReflexAgent(0, searcher.AlwaysDefend, d, WithSeed(42))
		for i := 0; i < 20; i++ {
			require.Equal(t, a.ChooseAction(tied), b.ChooseAction(tied))
		}
	})

	t.Run("panics without legal actions", func(t *testing.T) {
		a := NewReflexAgent(0, searcher.ScoreAdaptive, d)
		require.Panics(t, func() {
			a.ChooseAction(stuckState{State: gs})
		})
	})
}

func TestRetreat(t *testing.T) {
	gs, d := newField(t)
	endgame := gs.WithoutFood(gs.Food(game.Blue)[2:]...).WithAgentAt(0, game.Position{X: 3, Y: 3})

	t.Run("two pellets left sends the agent home", func(t *testing.T) {
		for seed := uint64(0); seed < 10; seed++ {
			a := NewReflexAgent(0, searcher.ScoreAdaptive, d, WithSeed(seed))
			a.RegisterInitialState(gs)

			decision := a.Decide(endgame)
			require.True(t, decision.Endgame)
			// North and West both reach distance 2 from (1,4); North comes first
			require.Equal(t, game.North, decision.Action)
		}
	})

	t.Run("three pellets left keeps playing", func(t *testing.T) {
		state := gs.WithoutFood(gs.Food(game.Blue)[3:]...).WithAgentAt(0, game.Position{X: 3, Y: 3})
		a := NewReflexAgent(0, searcher.ScoreAdaptive, d, WithSeed(1))
		a.RegisterInitialState(gs)
		require.False(t, a.Decide(state).Endgame)
	})

	t.Run("retreat minimizes distance to start", func(t *testing.T) {
		a := NewReflexAgent(0, searcher.AlwaysDefend, d)
		a.RegisterInitialState(gs)

		action := a.ChooseAction(endgame)
		var want game.Action
		closest := -1
		for _, candidate := range endgame.LegalActions(0) {
			pos, _ := searcher.Successor(endgame, 0, candidate).AgentState(0).Position()
			if dist := d.Distance(a.start, pos); closest < 0 || dist < closest {
				want, closest = candidate, dist
			}
		}
		require.Equal(t, want, action, "Should take the first action closest to the start")
	})

	t.Run("last turn of a slow match", func(t *testing.T) {
		l, err := game.ParseLayout(fieldLayout)
		require.NoError(t, err)
		rules := game.NewStandardRules()
		rules.AgentRate = 0.5
		rules.Turns = 1
		slow := game.NewGameState(l, rules)
		require.False(t, slow.IsOver())

		for _, role := range []searcher.Role{searcher.ScoreAdaptive, searcher.AlwaysDefend, searcher.PriorityDefend} {
			a := NewReflexAgent(0, role, d, WithSeed(1))
			a.RegisterInitialState(slow)
			require.NotPanics(t, func() {
				action := a.ChooseAction(slow)
				require.Contains(t, slow.LegalActions(0), action)
			}, role.String())

			retreating := slow.WithoutFood(slow.Food(game.Blue)[2:]...)
			require.NotPanics(t, func() {
				require.True(t, a.Decide(retreating).Endgame)
			}, role.String())
		}
	})

	t.Run("panics without a registered start", func(t *testing.T) {
		a := NewReflexAgent(0, searcher.ScoreAdaptive, d)
		require.Panics(t, func() { a.ChooseAction(endgame) })
	})
}
