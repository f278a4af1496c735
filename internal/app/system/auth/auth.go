// Package auth verifies bearer credentials against Firebase and exposes the
// decoded identity to handlers through the request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/dalemusser/forumhub/internal/app/system/httpjson"
	"github.com/dalemusser/forumhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Identity is the decoded result of a verified bearer token.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier validates a bearer credential and yields the identity it
// asserts, or an error when the token is invalid or expired.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// ErrInvalidToken is returned when a token fails verification.
var ErrInvalidToken = errors.New("invalid identity token")

type ctxKey string

const identityKey ctxKey = "identity"

// CurrentIdentity returns the verified identity injected by RequireAuth,
// and a found flag.
func CurrentIdentity(r *http.Request) (*Identity, bool) {
	id, ok := r.Context().Value(identityKey).(*Identity)
	return id, ok
}

func withIdentity(r *http.Request, id *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}

// WithTestIdentity injects an identity directly, bypassing verification.
// For handler tests only.
func WithTestIdentity(r *http.Request, id *Identity) *http.Request {
	return withIdentity(r, id)
}

// RequireAuth rejects requests without a valid bearer token:
//   - 401 when the Authorization header is missing or malformed
//   - 403 when the token fails verification
//
// On success the decoded identity is placed in the request context.
func RequireAuth(v TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
			defer cancel()

			id, err := v.Verify(ctx, token)
			if err != nil {
				logger.Warn("token verification failed", zap.Error(err))
				httpjson.Error(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, withIdentity(r, id))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// FirebaseVerifier verifies Firebase ID tokens with the admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier builds a verifier from a service-account credentials
// file. The app and auth client are constructed once at startup; a failure
// here must abort startup rather than leave routes guarded by a broken
// verifier.
func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

// Verify implements TokenVerifier.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id := &Identity{UID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		id.Email = email
	}
	if name, ok := tok.Claims["name"].(string); ok {
		id.Name = name
	}
	return id, nil
}
