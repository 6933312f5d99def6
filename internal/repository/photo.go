package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sharebnb/internal/models"
)

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a gorm-backed PhotoRepository.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}
	return photo, nil
}

func (r *photoRepository) All(ctx context.Context) ([]models.Photo, error) {
	photos := []models.Photo{}
	if err := r.db.WithContext(ctx).Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}
