package main

import (
	"fmt"
	"os"
	"time"

	"capture/config"
	"capture/experiments"
	"capture/experiments/metrics"
	"capture/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	games      int
	seed       uint64

	rootCmd = &cobra.Command{
		Use:   "capture",
		Short: "Reflex agents for two-team capture-the-flag",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		},
		SilenceUsage: true,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a single match between the configured red and blue teams",
		RunE:  runPlay,
	}

	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Play repeated matches and write CSV records",
	}
	matchUpCmd = &cobra.Command{
		Use:   "matchup",
		Short: "Play the configured teams against each other, alternating sides",
		RunE:  runExperiment(experiments.RunMatchUp),
	}
	tournamentCmd = &cobra.Command{
		Use:   "tournament",
		Short: "Play every pairing of single-role teams",
		RunE:  runExperiment(experiments.RunRoleTournament),
	}

	layoutsCmd = &cobra.Command{
		Use:   "layouts",
		Short: "List or print built-in layouts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLayouts,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML match configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Override the configured tie-breaking seed")
	experimentCmd.PersistentFlags().IntVarP(&games, "games", "n", 0, "Override the configured number of games")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(experimentCmd)
	experimentCmd.AddCommand(matchUpCmd)
	experimentCmd.AddCommand(tournamentCmd)
	rootCmd.AddCommand(layoutsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if games > 0 {
		cfg.Games = games
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	zerolog.SetGlobalLevel(cfg.Level())
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := cfg.LoadLayout()
	if err != nil {
		return err
	}

	matchSeed := cfg.Seed
	if matchSeed == 0 {
		matchSeed = uint64(time.Now().UnixNano())
	}
	red := metrics.TeamConfig{ID: 1, First: cfg.Red.First, Second: cfg.Red.Second}
	blue := metrics.TeamConfig{ID: 2, First: cfg.Blue.First, Second: cfg.Blue.Second}

	winner, gameMetric, _, err := experiments.PlayMatch(cfg, layout, game.NewMazeDistancer(layout), red, blue, matchSeed)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "winner: %s (score %d after %d turns, seed %d)\n",
		winner, gameMetric.Score, gameMetric.Turns, matchSeed)
	return nil
}

func runExperiment(run func(config.Config) (experiments.Result, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		result, err := run(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "played %d games (%d ties), wins by team: %v\nrecords: %s\n",
			result.Games, result.Ties, result.Wins, result.Dir)
		return nil
	}
}

func runLayouts(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range game.LayoutNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}
	layout, err := game.LoadLayout(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), layout.String())
	return nil
}
