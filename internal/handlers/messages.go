package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sharebnb/internal/middleware"
	"sharebnb/internal/service"
)

type createMessageRequest struct {
	Text string `json:"text"`
}

// GetMessages returns every message.
func (h *Handlers) GetMessages(c echo.Context) error {
	messages, err := h.messages.All(c.Request().Context())
	if err != nil {
		slog.Error("message list failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": messages})
}

// CreateMessage sends a message from the session user to the host of the
// listing named in the path.
func (h *Handlers) CreateMessage(c echo.Context) error {
	senderID, ok := middleware.CurrentUserID(c)
	if !ok {
		return msg(c, http.StatusOK, msgNotAuthorized)
	}

	listingID, ok := parseID(c, "listing_id")
	if !ok {
		return msg(c, http.StatusNotFound, msgListingNotFound)
	}

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return msg(c, http.StatusBadRequest, "Invalid request body.")
	}

	message, err := h.messages.Send(c.Request().Context(), listingID, senderID, req.Text)
	if errors.Is(err, service.ErrListingNotFound) {
		return msg(c, http.StatusNotFound, msgListingNotFound)
	}
	if err != nil {
		slog.Error("message create failed", "listing_id", listingID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusCreated, echo.Map{"new_message": message})
}
