package engine

import "capture/experiments/metrics"

type Engine interface {
	// Run plays a match until it is over or a team forfeits
	Run() (winner string, gameMetric metrics.GameMetric, decisionMetrics []metrics.DecisionMetric)
}
