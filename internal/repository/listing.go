package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sharebnb/internal/models"
)

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a gorm-backed ListingRepository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return r.FindByID(ctx, listing.ID)
}

func (r *listingRepository) FindByID(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Bookings").
		First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find listing %d: %w", id, err)
	}
	normalizeListing(&listing)
	return &listing, nil
}

func (r *listingRepository) Search(ctx context.Context, q string) ([]models.Listing, error) {
	tx := r.db.WithContext(ctx).Preload("Photos").Preload("Bookings")
	if q != "" {
		// LOWER + LIKE matches case-insensitively on both sqlite and postgres.
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	listings := []models.Listing{}
	if err := tx.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	for i := range listings {
		normalizeListing(&listings[i])
	}
	return listings, nil
}

func (r *listingRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Listing{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete listing %d: %w", id, err)
	}
	return nil
}

func normalizeListing(listing *models.Listing) {
	if listing.Photos == nil {
		listing.Photos = []models.Photo{}
	}
	if listing.Bookings == nil {
		listing.Bookings = []models.Booking{}
	}
}
