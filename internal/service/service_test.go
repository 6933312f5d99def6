package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sharebnb/internal/database"
	"sharebnb/internal/mailer"
	"sharebnb/internal/models"
	"sharebnb/internal/repository"
)

// testEnv wires real sqlite-backed repositories with a disabled mailer.
type testEnv struct {
	db       *gorm.DB
	users    repository.UserRepository
	listings repository.ListingRepository
	photos   repository.PhotoRepository
	bookings repository.BookingRepository
	messages repository.MessageRepository
	mailer   *mailer.Mailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return &testEnv{
		db:       db,
		users:    repository.NewUserRepository(db),
		listings: repository.NewListingRepository(db),
		photos:   repository.NewPhotoRepository(db),
		bookings: repository.NewBookingRepository(db),
		messages: repository.NewMessageRepository(db),
		mailer:   mailer.New("", "noreply@sharebnb.dev"),
	}
}

func (e *testEnv) createUser(t *testing.T, username, email string) *models.User {
	t.Helper()

	user, err := e.users.Create(context.Background(), &models.User{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     email,
		Password:  "not-a-real-hash",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createListing(t *testing.T, hostID uint, name string) *models.Listing {
	t.Helper()

	listing, err := e.listings.Create(context.Background(), &models.Listing{
		Name:    name,
		Price:   100.50,
		Details: "It's great",
		UserID:  hostID,
	})
	require.NoError(t, err)
	return listing
}

// fakeStorage records uploads and can be told to fail them.
type fakeStorage struct {
	uploads []string
	fail    bool
}

func (f *fakeStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	f.uploads = append(f.uploads, key)
	if f.fail {
		return errors.New("bucket unavailable")
	}
	return nil
}

func (f *fakeStorage) URL(key string) string {
	return "https://photos.test/" + key
}
