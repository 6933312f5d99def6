// Package middleware carries the echo middleware for session identity and
// login rate limiting.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sharebnb/internal/session"
)

// CookieName is the session cookie the browser holds.
const CookieName = "session_id"

const currentUserKey = "current_user_id"

// SessionIdentity resolves the session cookie to a user id and stashes it in
// the request context. It never rejects: handlers that need identity check
// CurrentUserID themselves, since most routes are public.
func SessionIdentity(sessions *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			userID, ok, err := sessions.UserID(c.Request().Context(), cookie.Value)
			if err != nil {
				slog.Error("session lookup failed", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError)
			}
			if ok {
				c.Set(currentUserKey, userID)
			}
			return next(c)
		}
	}
}

// CurrentUserID returns the session-authenticated user id for the request,
// if any.
func CurrentUserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(currentUserKey).(uint)
	return id, ok
}
