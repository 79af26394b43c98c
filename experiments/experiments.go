package experiments

import (
	"fmt"
	"time"

	"capture/config"
	"capture/engine"
	"capture/experiments/metrics"
	"capture/game"
	"capture/searcher"
	"capture/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of one experiment.
type Result struct {
	Dir   string      // where records were written
	Games int         // games played
	Wins  map[int]int // TeamConfig.ID -> games won
	Ties  int
}

// RunMatchUp plays the configured red and blue teams against each other,
// swapping sides every other game, and stores the records.
func RunMatchUp(cfg config.Config) (Result, error) {
	teams := []metrics.TeamConfig{
		{ID: 1, First: cfg.Red.First, Second: cfg.Red.Second},
		{ID: 2, First: cfg.Blue.First, Second: cfg.Blue.Second},
	}
	matchUps := [][]metrics.TeamConfig{
		{teams[0], teams[1]},
		{teams[1], teams[0]},
	}
	return runExperiment("matchup", cfg, teams, matchUps)
}

// RunRoleTournament fields one team per role, both members sharing it, and
// plays every ordered pairing of distinct roles.
func RunRoleTournament(cfg config.Config) (Result, error) {
	roles := []searcher.Role{searcher.ScoreAdaptive, searcher.AlwaysDefend, searcher.PriorityDefend}
	teams := make([]metrics.TeamConfig, len(roles))
	for i, role := range roles {
		teams[i] = metrics.TeamConfig{ID: i + 1, First: role.String(), Second: role.String()}
	}

	matchUps := [][]metrics.TeamConfig{}
	for _, red := range teams {
		for _, blue := range teams {
			if red.ID != blue.ID {
				matchUps = append(matchUps, []metrics.TeamConfig{red, blue})
			}
		}
	}
	return runExperiment("tournament", cfg, teams, matchUps)
}

func runExperiment(name string, cfg config.Config, teams []metrics.TeamConfig, matchUps [][]metrics.TeamConfig) (Result, error) {
	layout, err := cfg.LoadLayout()
	if err != nil {
		return Result{}, err
	}
	distancer := game.NewMazeDistancer(layout)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	result := Result{Wins: make(map[int]int)}
	gameRecords := []metrics.GameRecord{}
	decisionRecords := []metrics.DecisionRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi := 0; result.Games < cfg.Games; mi = (mi + 1) % len(matchUps) {
		red, blue := matchUps[mi][0], matchUps[mi][1]
		gameSeed := seed + uint64(result.Games)*97

		log.Info().Msgf("starting game %d of %d: red=%+v blue=%+v", result.Games+1, cfg.Games, red, blue)

		winner, gameMetric, decisionMetrics, err := PlayMatch(cfg, layout, distancer, red, blue, gameSeed)
		if err != nil {
			return Result{}, err
		}
		result.Games++
		switch winner {
		case game.Red.String():
			result.Wins[red.ID]++
		case game.Blue.String():
			result.Wins[blue.ID]++
		default:
			result.Ties++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         result.Games,
			Red:        red.ID,
			Blue:       blue.ID,
			Seed:       gameSeed,
			GameMetric: gameMetric,
		})
		for _, dm := range decisionMetrics {
			decisionRecords = append(decisionRecords, metrics.DecisionRecord{
				Game:           result.Games,
				DecisionMetric: dm,
			})
		}

		log.Info().Msgf("completed game %d with winner: %s", result.Games, winner)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment results
	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()

	if err := writer.WriteTeamConfigs(teams); err != nil {
		return Result{}, fmt.Errorf("failed to store team configs: %w", err)
	}
	log.Info().Msg("stored team configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Result{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteDecisionRecords(decisionRecords); err != nil {
		return Result{}, fmt.Errorf("failed to write decision records: %w", err)
	}
	log.Info().Msg("stored decision records")

	return result, nil
}

// PlayMatch runs one game between two team configurations on layout.
func PlayMatch(cfg config.Config, layout *game.Layout, distancer game.Distancer, red, blue metrics.TeamConfig, seed uint64) (string, metrics.GameMetric, []metrics.DecisionMetric, error) {
	if layout.NumAgents() != 4 {
		return "", metrics.GameMetric{}, nil, fmt.Errorf("layout %s has %d agents, need 4", cfg.LayoutName(), layout.NumAgents())
	}

	agentOptions := agent.WithAgentOptions(agent.WithBudget(cfg.TurnBudget))
	redTeam, err := agent.CreateTeam(0, 2, true, distancer,
		agent.WithRoles(red.First, red.Second), agent.WithTeamSeed(seed), agentOptions)
	if err != nil {
		return "", metrics.GameMetric{}, nil, fmt.Errorf("red team: %w", err)
	}
	blueTeam, err := agent.CreateTeam(1, 3, false, distancer,
		agent.WithRoles(blue.First, blue.Second), agent.WithTeamSeed(seed), agentOptions)
	if err != nil {
		return "", metrics.GameMetric{}, nil, fmt.Errorf("blue team: %w", err)
	}

	agents := []agent.Agent{redTeam[0], blueTeam[0], redTeam[1], blueTeam[1]}
	e := engine.NewLocalEngine(layout, cfg.GameRules(), agents,
		engine.WithBudget(cfg.TurnBudget),
		engine.WithMaxOverruns(cfg.MaxOverruns),
		engine.WithLayoutName(cfg.LayoutName()),
		engine.WithMetrics(),
	)

	winner, gameMetric, decisionMetrics := e.Run()
	return winner, gameMetric, decisionMetrics, nil
}
