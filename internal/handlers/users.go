package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetUsers returns every user, bookings embedded.
func (h *Handlers) GetUsers(c echo.Context) error {
	users, err := h.users.All(c.Request().Context())
	if err != nil {
		slog.Error("user list failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}
