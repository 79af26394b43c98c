package agent

import (
	"fmt"
	"time"

	"capture/game"
	"capture/meta"
	"capture/searcher"
	"capture/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(a *ReflexAgent)

// WithSeed pins the tie-breaking random source.
func WithSeed(seed uint64) Option {
	return func(a *ReflexAgent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(a *ReflexAgent) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// WithBudget sets the per-turn time after which a decision is logged as slow.
func WithBudget(budget time.Duration) Option {
	return func(a *ReflexAgent) {
		if budget > 0 {
			a.budget = budget
		}
	}
}

// Decision is the outcome of one turn together with how it was reached.
type Decision struct {
	Action  game.Action
	Mode    searcher.Mode
	Scores  map[game.Action]float64
	Best    []game.Action
	Endgame bool // retreat override engaged
	Elapsed time.Duration
}

// ReflexAgent picks the action whose immediate successor scores highest
// under its role's linear evaluation.
type ReflexAgent struct {
	extractor  searcher.Extractor
	weights    searcher.Weights
	rng        *rand.Rand
	budget     time.Duration
	start      game.Position
	registered bool
}

func NewReflexAgent(index int, role searcher.Role, distancer game.Distancer, options ...Option) *ReflexAgent {
	if distancer == nil {
		panic("reflex agent needs a distancer")
	}
	a := &ReflexAgent{ // Default values
		extractor: searcher.Extractor{Role: role, Agent: index, Distancer: distancer},
		weights:   role.Weights(),
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		budget:    meta.TURN_BUDGET,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *ReflexAgent) Index() int {
	return a.extractor.Agent
}

func (a *ReflexAgent) Role() searcher.Role {
	return a.extractor.Role
}

func (a *ReflexAgent) RegisterInitialState(state game.State) {
	pos, ok := state.AgentState(a.Index()).Position()
	if !ok {
		panic(fmt.Sprintf("agent %d cannot see its own start", a.Index()))
	}
	a.start = pos
	a.registered = true
}

func (a *ReflexAgent) ChooseAction(state game.State) game.Action {
	return a.Decide(state).Action
}

func (a *ReflexAgent) Decide(state game.State) Decision {
	began := time.Now()

	actions := state.LegalActions(a.Index())
	if len(actions) == 0 {
		panic(fmt.Sprintf("no legal actions for agent %d", a.Index()))
	}

	scores := make(map[game.Action]float64, len(actions))
	modes := make(map[game.Action]searcher.Mode, len(actions))
	best := []game.Action{}
	maxScore := 0.0
	for i, action := range actions {
		features, mode := a.extractor.ExtractWithMode(state, action)
		score := searcher.Evaluate(features, a.weights)
		scores[action] = score
		modes[action] = mode
		switch {
		case i == 0 || score > maxScore:
			maxScore = score
			best = []game.Action{action}
		case score == maxScore:
			best = append(best, action)
		}
	}

	d := Decision{Scores: scores, Best: best}
	if len(searcher.NewView(state, a.Index()).FoodToEat()) <= searcher.RetreatFood {
		d.Action = a.retreat(state, actions)
		d.Endgame = true
	} else {
		d.Action = best[a.rng.Intn(len(best))]
	}
	d.Mode = modes[d.Action]
	d.Elapsed = time.Since(began)

	log.Debug().
		Int("agent", a.Index()).
		Stringer("role", a.Role()).
		Stringer("mode", d.Mode).
		Stringer("action", d.Action).
		Int("candidates", len(actions)).
		Int("best", len(best)).
		Bool("endgame", d.Endgame).
		Dur("elapsed", d.Elapsed).
		Msg("chose action")
	if d.Elapsed > a.budget {
		log.Warn().Msgf("agent %d took %s, over its %s budget", a.Index(), d.Elapsed, a.budget)
	}
	return d
}

// retreat returns the first action whose successor is closest to the start.
func (a *ReflexAgent) retreat(state game.State, actions []game.Action) game.Action {
	if !a.registered {
		panic(fmt.Sprintf("agent %d has no registered start", a.Index()))
	}
	i := utils.ArgMin(actions, func(action game.Action) int {
		successor := searcher.Successor(state, a.Index(), action)
		pos, _ := successor.AgentState(a.Index()).Position()
		return a.extractor.Distancer.Distance(a.start, pos)
	})
	return actions[i]
}

var _ Decider = (*ReflexAgent)(nil)
