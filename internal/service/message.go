package service

import (
	"context"
	"time"

	"sharebnb/internal/models"
	"sharebnb/internal/repository"
)

// MessageService lets authenticated users message listing hosts.
type MessageService struct {
	messages repository.MessageRepository
	listings repository.ListingRepository
}

func NewMessageService(messages repository.MessageRepository, listings repository.ListingRepository) *MessageService {
	return &MessageService{messages: messages, listings: listings}
}

// All returns every message without participant filtering.
func (s *MessageService) All(ctx context.Context) ([]models.Message, error) {
	return s.messages.All(ctx)
}

// Send persists a message from senderID to the host of the listing. The
// recipient is resolved server-side from the listing row.
func (s *MessageService) Send(ctx context.Context, listingID, senderID uint, text string) (*models.Message, error) {
	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	return s.messages.Create(ctx, &models.Message{
		Text:        text,
		Timestamp:   time.Now().UTC(),
		SenderID:    senderID,
		RecipientID: listing.UserID,
	})
}
