// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/forumhub/internal/app/features/health"
	homefeature "github.com/dalemusser/forumhub/internal/app/features/home"
	paymentsfeature "github.com/dalemusser/forumhub/internal/app/features/payments"
	postsfeature "github.com/dalemusser/forumhub/internal/app/features/posts"
	usersfeature "github.com/dalemusser/forumhub/internal/app/features/users"
	"github.com/dalemusser/forumhub/internal/app/system/auth"
	"github.com/dalemusser/forumhub/internal/app/system/paygate"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. ForumHub mounts the liveness and
// health endpoints openly and groups the API routes so the bearer-token
// middleware can wrap them when require_auth is enabled.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Liveness text at the root
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	postsHandler := postsfeature.NewHandler(deps.MongoDatabase, logger)
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)

	intents := paygate.NewStripe(appCfg.StripeSecretKey, appCfg.StripeCurrency)
	paymentsHandler := paymentsfeature.NewHandler(deps.MongoDatabase, intents, logger)

	r.Group(func(api chi.Router) {
		if appCfg.RequireAuth && tokenVerifier != nil {
			api.Use(auth.RequireAuth(tokenVerifier, logger))
		}

		api.Mount("/posts", postsfeature.Routes(postsHandler))
		usersfeature.Register(api, usersHandler)
		paymentsfeature.Register(api, paymentsHandler)
	})

	return r, nil
}
