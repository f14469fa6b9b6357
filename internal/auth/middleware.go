package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sebuszqo/LanaApp/internal/user"
)

type contextKey string

const userContextKey contextKey = "user"

// bearerToken extracts the token from an "Authorization: Bearer" header. The
// scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func (s *service) unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	s.respondError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
}

func (s *service) JWTAccessTokenMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				s.unauthorized(w)
				return
			}

			currentUser, _, err := s.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, ErrUnauthorized) {
					s.unauthorized(w)
					return
				}
				s.logger.Error(r.Context(), "could not authenticate request", "error", err)
				s.respondError(w, http.StatusInternalServerError, "Error interno del servidor")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, currentUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user stored by JWTAccessTokenMiddleware.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	return u, ok && u != nil
}
