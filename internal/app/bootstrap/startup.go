// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/forumhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// tokenVerifier is built once at startup and consumed by BuildHandler.
// It stays nil when no Firebase credentials are configured.
var tokenVerifier auth.TokenVerifier

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// ForumHub uses it to construct the Firebase token verifier when
// credentials are configured.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.FirebaseCredentialsFile == "" {
		logger.Info("firebase credentials not configured, token verification disabled")
		return nil
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, appCfg.FirebaseCredentialsFile)
	if err != nil {
		logger.Error("firebase verifier init failed", zap.Error(err))
		return err
	}
	tokenVerifier = verifier
	logger.Info("firebase token verifier initialized")
	return nil
}
