package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sharebnb/internal/service"
)

// GetPhotos returns every photo.
func (h *Handlers) GetPhotos(c echo.Context) error {
	photos, err := h.photos.All(c.Request().Context())
	if err != nil {
		slog.Error("photo list failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, echo.Map{"photos": photos})
}

// UploadPhoto accepts a multipart image under the "file" field, pushes it
// to object storage and records the resulting public URL.
func (h *Handlers) UploadPhoto(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return msg(c, http.StatusNotFound, msgListingNotFound)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return msg(c, http.StatusBadRequest, "File is required.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("upload open failed", "filename", fileHeader.Filename, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	defer file.Close()

	photo, err := h.photos.Attach(
		c.Request().Context(),
		id,
		fileHeader.Filename,
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if errors.Is(err, service.ErrListingNotFound) {
		return msg(c, http.StatusNotFound, msgListingNotFound)
	}
	if err != nil {
		slog.Error("photo attach failed", "listing_id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, echo.Map{"new_photo": photo})
}
