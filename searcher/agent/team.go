package agent

import (
	"fmt"

	"capture/game"
	"capture/searcher"
)

// DefaultRole is used for both team members unless configured otherwise.
const DefaultRole = "stall"

type teamConfig struct {
	first, second string
	seed          *uint64
	options       []Option
}

type TeamOption func(c *teamConfig)

// WithRoles names the roles of the first and second agent.
func WithRoles(first, second string) TeamOption {
	return func(c *teamConfig) {
		if first != "" {
			c.first = first
		}
		if second != "" {
			c.second = second
		}
	}
}

// WithTeamSeed seeds each member's tie-breaking with seed plus its index.
func WithTeamSeed(seed uint64) TeamOption {
	return func(c *teamConfig) {
		c.seed = &seed
	}
}

// WithAgentOptions applies options to both members.
func WithAgentOptions(options ...Option) TeamOption {
	return func(c *teamConfig) {
		c.options = append(c.options, options...)
	}
}

// CreateTeam builds the two independent agents of one side. Roles are
// resolved from their configuration names; red teams take even indices.
func CreateTeam(first, second int, red bool, distancer game.Distancer, options ...TeamOption) ([2]*ReflexAgent, error) {
	c := &teamConfig{first: DefaultRole, second: DefaultRole}
	for _, option := range options {
		option(c)
	}

	team := game.Blue
	if red {
		team = game.Red
	}
	if first == second {
		return [2]*ReflexAgent{}, fmt.Errorf("team members share index %d", first)
	}

	var agents [2]*ReflexAgent
	for i, member := range []struct {
		index int
		role  string
	}{{first, c.first}, {second, c.second}} {
		if game.TeamOfIndex(member.index) != team {
			return [2]*ReflexAgent{}, fmt.Errorf("agent %d does not play for %s", member.index, team)
		}
		role, err := searcher.ParseRole(member.role)
		if err != nil {
			return [2]*ReflexAgent{}, fmt.Errorf("agent %d: %w", member.index, err)
		}
		opts := append([]Option{}, c.options...)
		if c.seed != nil {
			opts = append(opts, WithSeed(*c.seed+uint64(member.index)))
		}
		agents[i] = NewReflexAgent(member.index, role, distancer, opts...)
	}
	return agents, nil
}
