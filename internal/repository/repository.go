// Package repository provides the data access layer over gorm. Lookups
// return (nil, nil) when no row matches so callers can treat absence as a
// plain condition rather than an error.
package repository

import (
	"context"

	"sharebnb/internal/models"
)

// UserRepository handles user rows. Deleting a user cascades to their
// listings, bookings and messages via the schema's foreign keys.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id uint) error
}

// ListingRepository handles listing rows, always loaded with their photos
// and bookings so serialization can embed both.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	FindByID(ctx context.Context, id uint) (*models.Listing, error)
	// Search returns listings whose name contains q case-insensitively.
	// An empty q returns everything.
	Search(ctx context.Context, q string) ([]models.Listing, error)
	Delete(ctx context.Context, id uint) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) (*models.Photo, error)
	All(ctx context.Context) ([]models.Photo, error)
}

// BookingRepository only creates rows; bookings surface through the
// listing and user preloads, not a list endpoint.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	All(ctx context.Context) ([]models.Message, error)
}
