// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ForumHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, stripe_secret_key, etc.
//   - Environment variables: FORUMHUB_MONGO_URI, FORUMHUB_STRIPE_SECRET_KEY, etc.
//   - Command-line flags: --mongo_uri, --stripe_secret_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "forumDB", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Stripe configuration
	{Name: "stripe_secret_key", Default: "", Desc: "Stripe API secret key (required)"},
	{Name: "stripe_currency", Default: "usd", Desc: "Currency for payment intents"},

	// Firebase configuration
	{Name: "firebase_credentials_file", Default: "", Desc: "Path to a Firebase service account JSON file (blank disables token verification)"},
	{Name: "require_auth", Default: false, Desc: "Require a verified bearer token on API routes"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, FORUMHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FORUMHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		StripeSecretKey: appValues.String("stripe_secret_key"),
		StripeCurrency:  appValues.String("stripe_currency"),

		FirebaseCredentialsFile: appValues.String("firebase_credentials_file"),
		RequireAuth:             appValues.Bool("require_auth"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// ForumHub validates the MongoDB URI format and the required Stripe key
// up front, before attempting any connections.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.StripeSecretKey == "" {
		return fmt.Errorf("stripe_secret_key is required")
	}

	if appCfg.RequireAuth && appCfg.FirebaseCredentialsFile == "" {
		return fmt.Errorf("require_auth needs firebase_credentials_file to be set")
	}

	return nil
}
