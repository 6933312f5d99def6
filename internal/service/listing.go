package service

import (
	"context"
	"errors"
	"log/slog"

	"sharebnb/internal/mailer"
	"sharebnb/internal/models"
	"sharebnb/internal/repository"
)

// ErrListingNotFound is returned for lookups and child operations against
// an id with no listing row.
var ErrListingNotFound = errors.New("listing not found")

// CreateListingInput carries the client-supplied listing fields. The owner
// always comes from the session identity, not the request body.
type CreateListingInput struct {
	Name    string
	Price   float64
	Details string
}

// ListingService implements listing search, creation and booking.
type ListingService struct {
	listings repository.ListingRepository
	bookings repository.BookingRepository
	users    repository.UserRepository
	mailer   *mailer.Mailer
}

func NewListingService(
	listings repository.ListingRepository,
	bookings repository.BookingRepository,
	users repository.UserRepository,
	m *mailer.Mailer,
) *ListingService {
	return &ListingService{listings: listings, bookings: bookings, users: users, mailer: m}
}

// Search returns all listings, or those whose name contains q
// case-insensitively.
func (s *ListingService) Search(ctx context.Context, q string) ([]models.Listing, error) {
	return s.listings.Search(ctx, q)
}

// Get returns the listing with its photos and bookings embedded, or
// ErrListingNotFound.
func (s *ListingService) Get(ctx context.Context, id uint) (*models.Listing, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// Create persists a new listing owned by ownerID.
func (s *ListingService) Create(ctx context.Context, ownerID uint, in CreateListingInput) (*models.Listing, error) {
	return s.listings.Create(ctx, &models.Listing{
		Name:    in.Name,
		Price:   in.Price,
		Details: in.Details,
		UserID:  ownerID,
	})
}

// Book reserves the listing for userID and notifies the host.
func (s *ListingService) Book(ctx context.Context, listingID, userID uint) (*models.Booking, error) {
	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	booking, err := s.bookings.Create(ctx, &models.Booking{
		ListingID:     listing.ID,
		BookingUserID: userID,
	})
	if err != nil {
		return nil, err
	}

	go s.notifyHost(listing, userID)

	return booking, nil
}

func (s *ListingService) notifyHost(listing *models.Listing, guestID uint) {
	if !s.mailer.Enabled() {
		return
	}

	ctx := context.Background()
	host, err := s.users.FindByID(ctx, listing.UserID)
	if err != nil || host == nil {
		slog.Warn("booking notice skipped: host lookup failed", "listing_id", listing.ID, "error", err)
		return
	}
	guest, err := s.users.FindByID(ctx, guestID)
	if err != nil || guest == nil {
		slog.Warn("booking notice skipped: guest lookup failed", "user_id", guestID, "error", err)
		return
	}
	if err := s.mailer.SendBookingNotice(ctx, host, guest, listing); err != nil {
		slog.Warn("booking notice failed", "listing_id", listing.ID, "error", err)
	}
}
