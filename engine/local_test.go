package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"capture/game"
	"capture/searcher/agent"
)

type scriptedAgent struct {
	index  int
	action game.Action
	delay  time.Duration
}

func (s *scriptedAgent) Index() int {
	return s.index
}

func (s *scriptedAgent) RegisterInitialState(game.State) {}

func (s *scriptedAgent) ChooseAction(game.State) game.Action {
	time.Sleep(s.delay)
	return s.action
}

func scripted(actions ...game.Action) []agent.Agent {
	agents := make([]agent.Agent, len(actions))
	for i, action := range actions {
		agents[i] = &scriptedAgent{index: i, action: action}
	}
	return agents
}

func loadTiny(t *testing.T) *game.Layout {
	l, err := game.LoadLayout("tinyCapture")
	require.NoError(t, err)
	return l
}

func TestNewLocalEngine(t *testing.T) {
	l := loadTiny(t)

	t.Run("panics on missing agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine(l, game.NewStandardRules(), scripted(game.Stop, game.Stop))
		})
	})

	t.Run("panics on agents out of order", func(t *testing.T) {
		agents := scripted(game.Stop, game.Stop, game.Stop, game.Stop)
		agents[0], agents[1] = agents[1], agents[0]
		require.Panics(t, func() {
			NewLocalEngine(l, game.NewStandardRules(), agents)
		})
	})
}

func TestRun(t *testing.T) {
	l := loadTiny(t)

	t.Run("reflex teams play to the end", func(t *testing.T) {
		d := game.NewMazeDistancer(l)
		red, err := agent.CreateTeam(0, 2, true, d, agent.WithTeamSeed(1))
		require.NoError(t, err)
		blue, err := agent.CreateTeam(1, 3, false, d, agent.WithRoles("priority", "defense"), agent.WithTeamSeed(2))
		require.NoError(t, err)

		rules := game.NewStandardRules()
		rules.Turns = 200
		e := NewLocalEngine(l, rules, []agent.Agent{red[0], blue[0], red[1], blue[1]},
			WithBudget(time.Second), WithMetrics(), WithLayoutName("tinyCapture"))

		winner, gameMetric, decisions := e.Run()
		require.Contains(t, []string{"red", "blue", "tie"}, winner)
		require.True(t, e.State.IsOver())
		require.Equal(t, winner, gameMetric.Winner)
		require.False(t, gameMetric.Forfeit)
		require.Equal(t, "tinyCapture", gameMetric.Layout)
		require.Equal(t, e.State.Turn(), gameMetric.Turns)
		require.Len(t, decisions, gameMetric.Turns)
		for i, decision := range decisions {
			require.Equal(t, i, decision.Turn)
			require.Equal(t, i%4, decision.Agent)
			require.Contains(t, []string{"offense", "defense"}, decision.Mode)
			require.NotEmpty(t, decision.Role)
			require.Positive(t, decision.Candidates)
		}
	})

	t.Run("illegal actions become stop", func(t *testing.T) {
		rules := game.NewStandardRules()
		rules.Turns = 4
		// West of the first start is a wall
		e := NewLocalEngine(l, rules, scripted(game.West, game.Stop, game.Stop, game.Stop), WithMetrics())

		_, _, decisions := e.Run()
		require.Len(t, decisions, 4)
		require.Equal(t, "Stop", decisions[0].Action)
		require.Equal(t, l.Starts[0], e.State.AgentState(0).Config.Pos)
	})

	t.Run("slow team forfeits", func(t *testing.T) {
		agents := scripted(game.Stop, game.Stop, game.Stop, game.Stop)
		agents[0].(*scriptedAgent).delay = 5 * time.Millisecond
		e := NewLocalEngine(l, game.NewStandardRules(), agents,
			WithBudget(time.Millisecond), WithMaxOverruns(0), WithMetrics())

		winner, gameMetric, decisions := e.Run()
		require.Equal(t, "blue", winner)
		require.True(t, gameMetric.Forfeit)
		require.Equal(t, 1, gameMetric.Overruns)
		require.Len(t, decisions, 1)
		require.True(t, decisions[0].Overrun)
	})

	t.Run("without metrics only the outcome is kept", func(t *testing.T) {
		rules := game.NewStandardRules()
		rules.Turns = 4
		e := NewLocalEngine(l, rules, scripted(game.Stop, game.Stop, game.Stop, game.Stop))

		winner, gameMetric, decisions := e.Run()
		require.Equal(t, "tie", winner)
		require.Equal(t, 4, gameMetric.Turns)
		require.Nil(t, decisions)
	})
}
