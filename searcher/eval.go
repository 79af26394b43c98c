package searcher

// Weights maps features to their linear coefficients.
type Weights map[Feature]float64

// AdaptiveWeights is the profile of the agents that switch between offense
// and defense. Invaders dominate every other term.
func AdaptiveWeights() Weights {
	return Weights{
		SuccessorScore:    -100,
		OnDefense:         100,
		ObjectiveDistance: -1,
		NumInvaders:       -1000,
		Stopped:           -100,
		Fear:              -10,
	}
}

// DefenseWeights is the profile of the pure defender. It never populates
// offense features, so it carries no weights for them.
func DefenseWeights() Weights {
	return Weights{
		OnDefense:         100,
		ObjectiveDistance: -1,
		NumInvaders:       -1000,
		Stopped:           -100,
	}
}

// Evaluate returns the inner product of features and weights. A key missing
// from either side contributes zero. Terms are summed in name order so equal
// inputs always produce bit-identical scores.
func Evaluate(f Features, w Weights) float64 {
	score := 0.0
	for _, name := range f.Names() {
		score += f.values[name] * w[name]
	}
	return score
}
