// Package handlers exposes the HTTP/JSON surface. Most failures are
// reported as 200-status {"msg": ...} bodies; missing resources use 404.
// Callers inspect the body, not the status, to detect them.
package handlers

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sharebnb/internal/middleware"
	"sharebnb/internal/repository"
	"sharebnb/internal/service"
	"sharebnb/internal/session"
)

const (
	msgNotAuthorized      = "NOT AUTHORIZED"
	msgListingNotFound    = "Listing not found."
	msgInvalidCredentials = "Invalid credentials."
)

// Handlers bundles the route handlers and their dependencies.
type Handlers struct {
	auth     *service.AuthService
	listings *service.ListingService
	photos   *service.PhotoService
	messages *service.MessageService
	users    repository.UserRepository
	sessions *session.Store

	sessionTTL         time.Duration
	loginRatePerMinute int
	loginRateBurst     int
}

func New(
	auth *service.AuthService,
	listings *service.ListingService,
	photos *service.PhotoService,
	messages *service.MessageService,
	users repository.UserRepository,
	sessions *session.Store,
	sessionTTL time.Duration,
	loginRatePerMinute, loginRateBurst int,
) *Handlers {
	return &Handlers{
		auth:               auth,
		listings:           listings,
		photos:             photos,
		messages:           messages,
		users:              users,
		sessions:           sessions,
		sessionTTL:         sessionTTL,
		loginRatePerMinute: loginRatePerMinute,
		loginRateBurst:     loginRateBurst,
	}
}

// Register wires all routes onto e. Session identity is resolved for every
// request; only /login and /signup are rate limited.
func (h *Handlers) Register(e *echo.Echo) {
	e.Use(middleware.SessionIdentity(h.sessions))

	credentialLimit := middleware.LoginRateLimit(h.loginRatePerMinute, h.loginRateBurst)
	e.POST("/signup", h.Signup, credentialLimit)
	e.POST("/login", h.Login, credentialLimit)
	e.POST("/logout", h.Logout)

	e.GET("/users", h.GetUsers)

	e.GET("/listings", h.GetListings)
	e.GET("/listings/:id", h.GetListing)
	e.POST("/listings", h.CreateListing)
	e.POST("/listings/:id/book", h.BookListing)

	e.GET("/photos", h.GetPhotos)
	e.POST("/listings/:id/photos", h.UploadPhoto)

	e.GET("/messages", h.GetMessages)
	e.POST("/messages/:listing_id", h.CreateMessage)
}

func msg(c echo.Context, code int, text string) error {
	return c.JSON(code, echo.Map{"msg": text})
}

// parseID parses a numeric path parameter. Non-numeric ids behave like
// missing rows.
func parseID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
