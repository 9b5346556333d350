package experiments

import (
	"fmt"

	"chessbot/agent"
	"chessbot/config"
	"chessbot/engine"
	"chessbot/metrics"

	"github.com/rs/zerolog/log"
)

// Run plays every matchup of the match config and stores the agent configs,
// game records and move records under the config's output directory. It returns
// the directory written to.
func Run(cfg config.MatchConfig) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.Matchups {
		whiteConfig, ok := cfg.Agent(matchup.White)
		if !ok {
			return "", fmt.Errorf("matchup %d: unknown white agent %d: %w", mi+1, matchup.White, config.ErrInvalidConfig)
		}
		blackConfig, ok := cfg.Agent(matchup.Black)
		if !ok {
			return "", fmt.Errorf("matchup %d: unknown black agent %d: %w", mi+1, matchup.Black, config.ErrInvalidConfig)
		}

		// Agents live for the whole matchup so seeded agents vary between games
		white, err := agent.FromConfig(whiteConfig)
		if err != nil {
			return "", err
		}
		black, err := agent.FromConfig(blackConfig)
		if err != nil {
			return "", err
		}

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(cfg.Matchups), whiteConfig, blackConfig)

		for i := 0; i < cfg.Games; i++ {
			e, err := engine.LocalEngine(white, black, cfg.StartFEN, engine.WithBudget(cfg.Budget), engine.WithMaxPlies(cfg.MaxPlies))
			if err != nil {
				return "", err
			}

			winner, gameMetric, moveMetrics := e.Run()
			gameMetric.White, gameMetric.Black = whiteConfig.ID, blackConfig.ID
			gameRecords = append(gameRecords, metrics.GameRecord{
				Matchup:    mi + 1,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(cfg.Matchups), i+1, cfg.Games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	return store(cfg, gameRecords, moveRecords)
}

func store(cfg config.MatchConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
