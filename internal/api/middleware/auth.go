// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const msgUnauthorized = "требуется заголовок X-User-ID"

// Auth требует валидный заголовок X-User-ID и кладет его в контекст
//
// The service sits behind the platform gateway, which authenticates the
// session and forwards the account id; this middleware only enforces
// presence and format.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID достает ID пользователя из контекста запроса
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
