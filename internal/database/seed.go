package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"sharebnb/internal/models"
)

// demoPasswordHash is the bcrypt hash shared by the demo accounts.
const demoPasswordHash = "$2b$12$Q1PUFjhN/AWRQ21LbGYvjeLpZZB6lfZ1BPwifHALGO6oIbyC3CmJe"

// Seed drops the schema and loads the demo fixtures: two users, one listing
// with a photo, a booking and a message. Intended for local development only.
func Seed(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.Message{},
		&models.Booking{},
		&models.Photo{},
		&models.Listing{},
		&models.User{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := Migrate(db); err != nil {
		return err
	}

	users := []models.User{
		{
			FirstName: "cherry",
			LastName:  "blossom",
			Username:  "cherry",
			Email:     "large@large.com",
			Password:  demoPasswordHash,
		},
		{
			FirstName: "mochi",
			LastName:  "donuts",
			Username:  "mochi",
			Email:     "mochi@donuts.com",
			Password:  demoPasswordHash,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	listing := models.Listing{
		Name:    "Brianna's patio",
		Price:   100.50,
		Details: "It's great",
		UserID:  users[0].ID,
	}
	if err := db.Create(&listing).Error; err != nil {
		return fmt.Errorf("failed to seed listing: %w", err)
	}

	fixtures := []any{
		&models.Photo{
			URL:       "https://be-sharebnb-listing-photos.s3.us-west-1.amazonaws.com/house.jpg",
			ListingID: listing.ID,
		},
		&models.Booking{
			ListingID:     listing.ID,
			BookingUserID: users[0].ID,
		},
		&models.Message{
			Text:        "How big is your pool?",
			Timestamp:   time.Now().UTC(),
			SenderID:    users[0].ID,
			RecipientID: users[1].ID,
		},
	}
	for _, fixture := range fixtures {
		if err := db.Create(fixture).Error; err != nil {
			return fmt.Errorf("failed to seed fixtures: %w", err)
		}
	}
	return nil
}
