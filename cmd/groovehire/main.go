package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/groovehire/backend/internal/config"
	"github.com/groovehire/backend/internal/logging"
	"github.com/groovehire/backend/internal/service/simulator"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "groovehire",
		Short:         "GrooveHire scripted service-booking assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				log.Warn().Err(err).Msg("failed to load .env file")
			}
		},
	}

	rootCmd.AddCommand(newServeCmd(), newChatCmd(), newRulesCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// setup loads configuration and applies the logging settings.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Log.Caller); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSimulator returns the rulebook from rulesFile, or the built-in one.
func loadSimulator(rulesFile string) (*simulator.Simulator, error) {
	if rulesFile == "" {
		return simulator.Default(), nil
	}
	sim, err := simulator.LoadRulebook(rulesFile)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", rulesFile).Int("rules", len(sim.Rules())).Msg("loaded rulebook")
	return sim, nil
}
