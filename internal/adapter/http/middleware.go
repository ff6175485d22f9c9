package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionFrom returns the session attached by SessionMiddleware, or nil.
func SessionFrom(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionKey).(*domain.Session)
	return sess
}

// SessionMiddleware resolves a bearer token to a session when one is
// presented. It never rejects by itself; handlers decide whether a session
// is required.
func SessionMiddleware(auth interfaces.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if sess, err := auth.VerifyToken(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), sessionKey, &sess))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func LoggingMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := fmt.Sprintf("req-%d", start.UnixNano())

			logger.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), requestID, map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			next.ServeHTTP(w, r)

			logger.Debug("http_response", "Request completed", requestID, map[string]any{
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

func RecoveryMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					requestID := fmt.Sprintf("req-%d", time.Now().UnixNano())
					logger.Error("panic_recovered", "Panic recovered", requestID, nil, fmt.Errorf("%v", err))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
