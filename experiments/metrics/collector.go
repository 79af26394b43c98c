package metrics

import (
	"time"
)

// DecisionMetric records a single agent turn.
type DecisionMetric struct {
	Turn       int
	Agent      int
	Role       string
	Mode       string
	Action     string
	Candidates int
	Endgame    bool
	Duration   time.Duration
	Overrun    bool
}

type GameMetric struct {
	Layout    string
	Winner    string // "red", "blue" or "tie"
	Forfeit   bool
	Score     int // positive favors red
	Turns     int
	Overruns  int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start(layout string)
	AddDecision(metric DecisionMetric)
	Complete(winner string, forfeit bool, score, turns int) (GameMetric, []DecisionMetric)
}

type collector struct {
	layout    string
	startTime time.Time
	overruns  int
	decisions []DecisionMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(layout string) {
	m.layout = layout
	m.startTime = time.Now()
	m.overruns = 0
	m.decisions = nil
}

func (m *collector) AddDecision(metric DecisionMetric) {
	if metric.Overrun {
		m.overruns++
	}
	m.decisions = append(m.decisions, metric)
}

func (m *collector) Complete(winner string, forfeit bool, score, turns int) (GameMetric, []DecisionMetric) {
	end := time.Now()
	return GameMetric{
		Layout:    m.layout,
		Winner:    winner,
		Forfeit:   forfeit,
		Score:     score,
		Turns:     turns,
		Overruns:  m.overruns,
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
	}, m.decisions
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(layout string)               {}
func (m *dummyCollector) AddDecision(metric DecisionMetric) {}
func (m *dummyCollector) Complete(winner string, forfeit bool, score, turns int) (GameMetric, []DecisionMetric) {
	return GameMetric{Winner: winner, Forfeit: forfeit, Score: score, Turns: turns}, nil
}
