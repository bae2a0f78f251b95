package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Alberto-Moura/pedidos-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type sessionCtxKey struct{}

// Session assigns each request an order-session identity. Clients keep the
// header from the response to stay on the same order; requests without one
// start a fresh session.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session assigned by Session middleware.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionCtxKey{}).(string); ok {
		return id
	}
	return ""
}
