package searcher

// Mode switch thresholds

const LeadThreshold = 5 // Score or food margin at which the team stops attacking
const FoodFloor = 2     // Own food count at or below which the team stops attacking

// RetreatFood is the opponent food count at or below which agents stop
// scoring and head home.
const RetreatFood = 2

// MaxFear is the fear of a visible threat standing on the agent's own cell,
// where the reciprocal distance is undefined.
const MaxFear = 10.0

// Mode is the behaviour an agent adopts for one candidate action.
type Mode int

const (
	Defense Mode = iota
	Offense
)

func (m Mode) String() string {
	if m == Offense {
		return "offense"
	}
	return "defense"
}
