package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sharebnb/internal/models"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a gorm-backed MessageRepository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

func (r *messageRepository) All(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	if err := r.db.WithContext(ctx).Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
