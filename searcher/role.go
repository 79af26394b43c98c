package searcher

import (
	"fmt"
	"sort"
)

// Role selects the feature extraction and weight profile of an agent.
type Role int

const (
	// ScoreAdaptive attacks while the game is close and defends a lead.
	ScoreAdaptive Role = iota
	// AlwaysDefend never leaves defense mode.
	AlwaysDefend
	// PriorityDefend is score adaptive, but when defending it guards its
	// capsules before its food.
	PriorityDefend
)

var roleNames = map[Role]string{
	ScoreAdaptive:  "stall",
	AlwaysDefend:   "defense",
	PriorityDefend: "priority",
}

// roleLookup maps configuration strings to roles.
var roleLookup = map[string]Role{
	"stall":    ScoreAdaptive,
	"adaptive": ScoreAdaptive,
	"defense":  AlwaysDefend,
	"priority": PriorityDefend,
}

func ParseRole(name string) (Role, error) {
	role, ok := roleLookup[name]
	if !ok {
		return 0, fmt.Errorf("unknown role %q (known: %v)", name, RoleNames())
	}
	return role, nil
}

// RoleNames lists the accepted role strings in sorted order.
func RoleNames() []string {
	names := make([]string, 0, len(roleLookup))
	for name := range roleLookup {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Weights returns a fresh copy of the role's weight profile.
func (r Role) Weights() Weights {
	if r == AlwaysDefend {
		return DefenseWeights()
	}
	return AdaptiveWeights()
}

func (r Role) adaptive() bool {
	return r == ScoreAdaptive || r == PriorityDefend
}

func (r Role) guardsCapsules() bool {
	return r == PriorityDefend
}
