package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/crowdship-app/crowdship-api/internal/service"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth rejects requests without a valid Bearer token and stores the acting
// user's id in the request context.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := actorFromRequest(authService, r)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth stores the actor id when a valid token is present and lets the
// request through anonymously otherwise. Used for guest trip listings.
func OptionalAuth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, err := actorFromRequest(authService, r); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func actorFromRequest(authService *service.AuthService, r *http.Request) (uuid.UUID, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, errMissingHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, errInvalidHeader
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		return uuid.Nil, err
	}

	userIDStr, ok := (*claims)["sub"].(string)
	if !ok {
		return uuid.Nil, errMissingSubject
	}

	return uuid.Parse(userIDStr)
}

// GetUserID returns the actor id stored by Auth or OptionalAuth. The zero
// uuid means the request is anonymous.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
