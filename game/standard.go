package game

type StandardRules struct {
	Scared    int
	Sight     int
	Turns     int
	AgentRate float64
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Scared:    40,
		Sight:     5,
		Turns:     1200,
		AgentRate: 1.0,
	}
}

func (sr *StandardRules) ScaredTime() int {
	return sr.Scared
}

func (sr *StandardRules) SightRange() int {
	return sr.Sight
}

func (sr *StandardRules) MaxTurns() int {
	return sr.Turns
}

func (sr *StandardRules) Speed(agent int) float64 {
	if sr.AgentRate <= 0 || sr.AgentRate > 1 {
		return 1.0
	}
	return sr.AgentRate
}
