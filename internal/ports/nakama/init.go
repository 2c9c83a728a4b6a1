package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"archsdinos/internal/bot"
)

// InitModule wires RPCs, the leaderboard and match handlers for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	if err := bot.LoadIdentities(envOr(env, EnvBotIdentityPath, defaultBotIdentityPath)); err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
	} else {
		bot.ProvisionBots(ctx, nk, logger)
	}

	// Authoritative, best score first, points accumulate, never resets.
	if err := nk.LeaderboardCreate(ctx, LeaderboardPoints, true, "desc", "incr", "", nil, true); err != nil {
		logger.Error("InitModule: Failed to create leaderboard %s: %v", LeaderboardPoints, err)
		return err
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameArchsDinos, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(), nil
	}); err != nil {
		return err
	}

	logger.Info("Archs vs Dinos Go module loaded.")
	return nil
}
