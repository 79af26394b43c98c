package engine

import (
	"fmt"
	"time"

	"capture/experiments/metrics"
	"capture/game"
	"capture/meta"
	"capture/searcher"
	"capture/searcher/agent"
	"capture/utils"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// WithBudget sets the per-decision time limit.
func WithBudget(budget time.Duration) Option {
	return func(e *LocalEngine) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

// WithMaxOverruns sets how many slow decisions a team may make before it
// forfeits.
func WithMaxOverruns(n int) Option {
	return func(e *LocalEngine) {
		if n >= 0 {
			e.maxOverruns = n
		}
	}
}

func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.metrics = metrics.NewCollector()
	}
}

func WithLayoutName(name string) Option {
	return func(e *LocalEngine) {
		e.layoutName = name
	}
}

// LocalEngine runs all agents of a match in-process, one move at a time in
// index order.
type LocalEngine struct {
	State  *game.GameState
	Agents []agent.Agent

	budget      time.Duration
	maxOverruns int
	metrics     metrics.Collector
	layoutName  string
}

func NewLocalEngine(l *game.Layout, rules game.Rules, agents []agent.Agent, options ...Option) *LocalEngine {
	if len(agents) != l.NumAgents() {
		panic(fmt.Sprintf("layout has %d agents, got %d", l.NumAgents(), len(agents)))
	}
	for i, a := range agents {
		if a.Index() != i {
			panic(fmt.Sprintf("agent at position %d has index %d", i, a.Index()))
		}
	}

	e := &LocalEngine{ // Default values
		State:       game.NewGameState(l, rules),
		Agents:      agents,
		budget:      meta.TURN_BUDGET,
		maxOverruns: meta.MAX_OVERRUNS,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.DecisionMetric) {
	e.metrics.Start(e.layoutName)
	for i, a := range e.Agents {
		a.RegisterInitialState(e.State.Observe(i))
	}

	log.Info().Msgf("match started on %q with %d agents", e.layoutName, len(e.Agents))

	overruns := make(map[game.Team]int)
	var forfeited *game.Team
	for !e.State.IsOver() {
		index := e.State.Turn() % len(e.Agents)
		team := game.TeamOfIndex(index)

		action, metric := e.decide(index)
		e.metrics.AddDecision(metric)

		if metric.Overrun {
			overruns[team]++
			log.Warn().Msgf("agent %d exceeded the %s budget (%s), %s overruns: %d", index, e.budget, metric.Duration, team, overruns[team])
			if overruns[team] > e.maxOverruns {
				forfeited = &team
				break
			}
		}

		e.State = e.State.Play(index, action)
	}

	winner := e.State.Winner()
	if forfeited != nil {
		winner = forfeited.Opponent().String()
		log.Info().Msgf("%s forfeits after %d overruns", forfeited, overruns[*forfeited])
	}
	log.Info().Msgf("match over after %d turns, score %d, winner: %s", e.State.Turn(), e.State.Score(), winner)

	gameMetric, decisionMetrics := e.metrics.Complete(winner, forfeited != nil, e.State.Score(), e.State.Turn())
	return winner, gameMetric, decisionMetrics
}

// decide asks one agent for its move on its own observation and falls back
// to a legal action when it answers with an illegal one.
func (e *LocalEngine) decide(index int) (game.Action, metrics.DecisionMetric) {
	a := e.Agents[index]
	observation := e.State.Observe(index)

	metric := metrics.DecisionMetric{Turn: e.State.Turn(), Agent: index}
	if r, ok := a.(interface{ Role() searcher.Role }); ok {
		metric.Role = r.Role().String()
	}

	began := time.Now()
	var action game.Action
	if d, ok := a.(agent.Decider); ok {
		decision := d.Decide(observation)
		action = decision.Action
		metric.Mode = decision.Mode.String()
		metric.Candidates = len(decision.Scores)
		metric.Endgame = decision.Endgame
	} else {
		action = a.ChooseAction(observation)
	}
	metric.Duration = time.Since(began)
	metric.Overrun = metric.Duration > e.budget

	legal := e.State.LegalActions(index)
	if utils.FindIndex(legal, action) < 0 {
		fallback := legal[0]
		if utils.FindIndex(legal, game.Stop) >= 0 {
			fallback = game.Stop
		}
		log.Warn().Msgf("agent %d returned illegal action %s, playing %s", index, action, fallback)
		action = fallback
	}
	metric.Action = action.String()
	return action, metric
}

var _ Engine = (*LocalEngine)(nil)
