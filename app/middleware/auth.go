package middleware

import (
	"context"
	"net/http"

	"bramble/app/models"
	"bramble/app/services"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const contextKeyUser contextKey = "user"

// Session keys.
const (
	SessionKeyUserID    = "user_id"
	SessionKeyFlash     = "flash"
	SessionKeyFlashType = "flash_type"
)

// Flash stores a one-shot notice in the session.
func Flash(ctx context.Context, sm *scs.SessionManager, message, messageType string) {
	sm.Put(ctx, SessionKeyFlash, message)
	sm.Put(ctx, SessionKeyFlashType, messageType)
}

// PopFlash removes and returns the pending notice, if any.
func PopFlash(ctx context.Context, sm *scs.SessionManager) (message, messageType string) {
	message = sm.PopString(ctx, SessionKeyFlash)
	messageType = sm.PopString(ctx, SessionKeyFlashType)
	if message != "" && messageType == "" {
		messageType = "info"
	}
	return message, messageType
}

// LoadUser creates middleware that resolves the session's user ID into a
// User and stores it in the request context. Anonymous requests pass
// through untouched; a stale session is destroyed.
func LoadUser(sm *scs.SessionManager, users *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetInt(r.Context(), SessionKeyUserID)
			if userID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUser(userID)
			if err != nil {
				_ = sm.Destroy(r.Context())
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser retrieves the authenticated user from the request context.
// Returns nil for anonymous requests.
func CurrentUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(contextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireUser creates middleware that requires an authenticated user.
// Anonymous requests are sent to the login page with a notice.
func RequireUser(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if CurrentUser(r) == nil {
				Flash(r.Context(), sm, "Please log in.", "error")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin creates middleware that requires an authenticated admin.
// Anyone else gets a 403; the request is rejected, not redirected.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := CurrentUser(r)
			if !user.IsAdmin() {
				logger.Warn("access denied",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("user_id", userIDForLog(user)),
				)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func userIDForLog(user *models.User) int {
	if user == nil {
		return 0
	}
	return user.ID
}
