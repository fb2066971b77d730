package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"tableBooker/internal/auth"
	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/models"

	"github.com/go-chi/render"
)

type ctxKey struct{}

// TokenParser verifies a bearer token and returns the caller's identity.
type TokenParser interface {
	Parse(tokenStr string) (*auth.Identity, error)
}

// New rejects requests without a valid bearer token and stores the
// caller's identity in the request context.
func New(log *slog.Logger, parser TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			identity, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.Debug("token rejected", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// AdminOnly allows only callers whose verified role is admin. It must be
// mounted inside New.
func AdminOnly() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity.Role != models.RoleAdmin {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(ctxKey{}).(auth.Identity)
	return identity, ok
}

// WithIdentity injects an identity into a context; used by handler tests.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, identity)
}
