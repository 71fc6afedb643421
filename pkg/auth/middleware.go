package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/pkg/utils"
)

type ContextKey string

const SessionKey ContextKey = "session"

// Middleware authenticates the bearer token and stores the access.Session in
// the request context.
func Middleware(tokens JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokens.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims.Session())))
		})
	}
}

func WithSession(ctx context.Context, session access.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

func SessionFromContext(ctx context.Context) (access.Session, bool) {
	session, ok := ctx.Value(SessionKey).(access.Session)
	return session, ok
}

// RequireSession returns the caller's session or answers 401.
func RequireSession(w http.ResponseWriter, r *http.Request) (access.Session, bool) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return session, ok
}
