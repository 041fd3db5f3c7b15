package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/jwtauth/v5"
	"go.opentelemetry.io/otel"
)

type principalContextKey struct{ name string }

var principalCtxKey = &principalContextKey{"principal"}

var tracer = otel.Tracer("temprx360/authz")

// NewAuthenticator returns a middleware that verifies the bearer token and
// stores the resulting principal in the request context. Tokens carry the
// caller's role and granted site IDs as claims, so authorization data lives
// with the token and no policy engine round trip is needed.
func NewAuthenticator(ctx context.Context, tokenAuth *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	verifier := jwtauth.Verifier(tokenAuth)

	return func(next http.Handler) http.Handler {
		return verifier(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			logger := logging.GetFromContext(r.Context())

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				if err == nil {
					err = errors.New("no token in request")
				}
				logger.Info("token verification failed", "err", err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			principal, err := principalFromClaims(claims)
			if err != nil {
				logger.Warn("malformed token claims", "err", err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		}))
	}
}

func principalFromClaims(claims map[string]any) (types.Principal, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return types.Principal{}, errors.New("missing sub claim")
	}

	principal := types.Principal{Subject: sub}

	if role, ok := claims["role"].(string); ok && strings.EqualFold(role, "admin") {
		principal.Role = types.RoleAdministrator
		return principal, nil
	}

	if sites, ok := claims["sites"].([]any); ok {
		principal.SiteIDs = make([]string, 0, len(sites))
		for _, s := range sites {
			siteID, ok := s.(string)
			if !ok {
				return types.Principal{}, errors.New("sites claim is not a list of strings")
			}
			principal.SiteIDs = append(principal.SiteIDs, siteID)
		}
	}

	return principal, nil
}

func WithPrincipal(ctx context.Context, principal types.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, principal)
}

// GetPrincipalFromContext extracts the authenticated caller from the
// provided context. The zero principal is returned for unauthenticated
// contexts and grants access to nothing.
func GetPrincipalFromContext(ctx context.Context) types.Principal {
	if principal, ok := ctx.Value(principalCtxKey).(types.Principal); ok {
		return principal
	}
	return types.Principal{}
}
