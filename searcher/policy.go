package searcher

// mode decides offense or defense for a candidate action. current is the
// state before the action, next the successor.
func (r Role) mode(current, next View) Mode {
	if !r.adaptive() {
		return Defense
	}
	// Consolidate a lead
	if current.Score() > LeadThreshold {
		return Defense
	}

	defend := len(next.FoodToDefend())
	winMargin := defend - len(next.FoodToEat())
	if winMargin < LeadThreshold && defend > FoodFloor {
		return Offense
	}
	return Defense
}
