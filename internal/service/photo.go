package service

import (
	"context"
	"io"
	"log/slog"

	"sharebnb/internal/models"
	"sharebnb/internal/repository"
	"sharebnb/internal/storage"
)

// PhotoService attaches uploaded images to listings.
type PhotoService struct {
	photos   repository.PhotoRepository
	listings repository.ListingRepository
	store    storage.ObjectStorage
}

func NewPhotoService(
	photos repository.PhotoRepository,
	listings repository.ListingRepository,
	store storage.ObjectStorage,
) *PhotoService {
	return &PhotoService{photos: photos, listings: listings, store: store}
}

// All returns every photo.
func (s *PhotoService) All(ctx context.Context) ([]models.Photo, error) {
	return s.photos.All(ctx)
}

// Attach uploads the file under its sanitized filename and persists a Photo
// row pointing at the public URL. Upload failures are logged and swallowed;
// the row records the address the object would have had. There is no retry.
func (s *PhotoService) Attach(ctx context.Context, listingID uint, filename string, body io.Reader, contentType string) (*models.Photo, error) {
	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	key := storage.SanitizeFilename(filename)
	if err := s.store.Upload(ctx, key, body, contentType); err != nil {
		slog.Error("photo upload failed", "listing_id", listing.ID, "key", key, "error", err)
	}

	return s.photos.Create(ctx, &models.Photo{
		URL:       s.store.URL(key),
		ListingID: listing.ID,
	})
}
