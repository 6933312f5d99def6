package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sharebnb/internal/middleware"
	"sharebnb/internal/service"
)

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup creates an account and immediately authenticates the new session.
// Duplicate email or username come back as 200 {"msg": ...}.
func (h *Handlers) Signup(c echo.Context) error {
	// Any existing session is dropped before the new identity is bound.
	h.endSession(c)

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return msg(c, http.StatusBadRequest, "Invalid request body.")
	}

	user, err := h.auth.Signup(c.Request().Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return msg(c, http.StatusOK, "Email is already registered.")
	case errors.Is(err, service.ErrUsernameTaken):
		return msg(c, http.StatusOK, "Username is taken. Please choose a different one.")
	case err != nil:
		slog.Error("signup failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	if err := h.beginSession(c, user.ID); err != nil {
		slog.Error("session create failed", "user_id", user.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, echo.Map{"user": user})
}

// Login verifies credentials and establishes a session. Unknown username
// and wrong password are indistinguishable to the caller.
func (h *Handlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return msg(c, http.StatusBadRequest, "Invalid request body.")
	}

	user, err := h.auth.Authenticate(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return msg(c, http.StatusOK, msgInvalidCredentials)
	}
	if err != nil {
		slog.Error("login failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	if err := h.beginSession(c, user.ID); err != nil {
		slog.Error("session create failed", "user_id", user.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Logout clears the session binding.
func (h *Handlers) Logout(c echo.Context) error {
	if _, ok := middleware.CurrentUserID(c); !ok {
		return msg(c, http.StatusOK, "You are not logged in")
	}

	h.endSession(c)
	return msg(c, http.StatusOK, "Logged out successfully")
}

func (h *Handlers) beginSession(c echo.Context, userID uint) error {
	token, err := h.sessions.Create(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.sessionTTL.Seconds()),
	})
	return nil
}

func (h *Handlers) endSession(c echo.Context) {
	cookie, err := c.Cookie(middleware.CookieName)
	if err != nil || cookie.Value == "" {
		return
	}

	if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
