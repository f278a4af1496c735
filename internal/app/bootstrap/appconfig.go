// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request limits. AppConfig is where
// everything specific to the forum service lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Stripe payment configuration
	StripeSecretKey string // Stripe API secret key (required)
	StripeCurrency  string // Currency for payment intents (default: usd)

	// Firebase identity verification
	FirebaseCredentialsFile string // Path to a Firebase service account JSON file (blank disables token verification)

	// When true, the API routes are wrapped in the bearer-token
	// middleware. Off by default so the open read/write surface the
	// frontend expects keeps working without tokens.
	RequireAuth bool
}
