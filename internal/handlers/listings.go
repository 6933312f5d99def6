package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sharebnb/internal/middleware"
	"sharebnb/internal/service"
)

type createListingRequest struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Details string  `json:"details"`
}

// GetListings returns all listings, or those matching the q substring
// case-insensitively.
func (h *Handlers) GetListings(c echo.Context) error {
	listings, err := h.listings.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		slog.Error("listing search failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, echo.Map{"listings": listings})
}

// GetListing returns one listing with photos and bookings embedded.
func (h *Handlers) GetListing(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return msg(c, http.StatusNotFound, msgListingNotFound)
	}

	listing, err := h.listings.Get(c.Request().Context(), id)
	if errors.Is(err, service.ErrListingNotFound) {
		return msg(c, http.StatusNotFound, msgListingNotFound)
	}
	if err != nil {
		slog.Error("listing lookup failed", "listing_id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, echo.Map{"listing": listing})
}

// CreateListing persists a new listing owned by the session user.
func (h *Handlers) CreateListing(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return msg(c, http.StatusOK, msgNotAuthorized)
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return msg(c, http.StatusBadRequest, "Invalid request body.")
	}

	listing, err := h.listings.Create(c.Request().Context(), userID, service.CreateListingInput{
		Name:    req.Name,
		Price:   req.Price,
		Details: req.Details,
	})
	if err != nil {
		slog.Error("listing create failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusCreated, echo.Map{"new_listing": listing})
}

// BookListing reserves the listing for the session user.
func (h *Handlers) BookListing(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return msg(c, http.StatusOK, msgNotAuthorized)
	}

	id, ok := parseID(c, "id")
	if !ok {
		return msg(c, http.StatusNotFound, msgListingNotFound)
	}

	_, err := h.listings.Book(c.Request().Context(), id, userID)
	if errors.Is(err, service.ErrListingNotFound) {
		return msg(c, http.StatusNotFound, msgListingNotFound)
	}
	if err != nil {
		slog.Error("booking failed", "listing_id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return msg(c, http.StatusOK, "Successfully booked!")
}
