// meta/meta.go
package meta

import "time"

// TURN_BUDGET is the wall-clock time an agent may spend on one decision.
const TURN_BUDGET = 100 * time.Millisecond

// MAX_OVERRUNS is how many slow decisions a team may make before it forfeits.
const MAX_OVERRUNS = 3

// MAX_TURNS bounds the number of agent moves in a match.
const MAX_TURNS = 1200

// GAMES defines the number of games per match-up in experiments.
const GAMES = 10
