// Package observability builds the application's zap logger and adapts
// simulator events into structured log entries.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/fightsim/internal/config"
	"github.com/cory-johannsen/fightsim/internal/game/simulator"
)

// NewLogger creates a structured logger from the given logging configuration.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named("fightsim"), nil
}

// TurnLogger returns a simulator.Params.OnTurn hook that logs every resolved
// turn at debug level.
func TurnLogger(logger *zap.Logger) func(simulator.TurnEvent) {
	return func(e simulator.TurnEvent) {
		if ce := logger.Check(zapcore.DebugLevel, "turn"); ce != nil {
			ce.Write(
				zap.Int("turn", e.Turn),
				zap.Stringer("actor", e.Actor),
				zap.Int("hits", len(e.Hits)),
				zap.Int("damage", totalDamage(e.Hits)),
				zap.Int("actor_hp", e.ActorHP),
				zap.Int("target_hp", e.TargetHP),
			)
		}
	}
}

func totalDamage(hits []simulator.Hit) int {
	total := 0
	for _, h := range hits {
		total += h.Damage
	}
	return total
}
