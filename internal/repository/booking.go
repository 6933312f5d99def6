package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sharebnb/internal/models"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a gorm-backed BookingRepository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}
