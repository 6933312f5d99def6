package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookBindsSessionUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewListingService(env.listings, env.bookings, env.users, env.mailer)
	ctx := context.Background()

	host := env.createUser(t, "cherry", "cherry@example.com")
	guest := env.createUser(t, "mochi", "mochi@example.com")
	listing := env.createListing(t, host.ID, "Brianna's patio")

	booking, err := svc.Book(ctx, listing.ID, guest.ID)
	require.NoError(t, err)
	require.Equal(t, listing.ID, booking.ListingID)
	require.Equal(t, guest.ID, booking.BookingUserID)
}

func TestBookUnknownListing(t *testing.T) {
	env := newTestEnv(t)
	svc := NewListingService(env.listings, env.bookings, env.users, env.mailer)

	guest := env.createUser(t, "mochi", "mochi@example.com")

	_, err := svc.Book(context.Background(), 9999, guest.ID)
	require.ErrorIs(t, err, ErrListingNotFound)
}

func TestCreateUsesSessionOwner(t *testing.T) {
	env := newTestEnv(t)
	svc := NewListingService(env.listings, env.bookings, env.users, env.mailer)

	host := env.createUser(t, "cherry", "cherry@example.com")

	listing, err := svc.Create(context.Background(), host.ID, CreateListingInput{
		Name:    "Brianna's patio",
		Price:   100.50,
		Details: "It's great",
	})
	require.NoError(t, err)
	require.Equal(t, host.ID, listing.UserID)
	require.InEpsilon(t, 100.50, listing.Price, 0.001)
}

func TestGetUnknownListing(t *testing.T) {
	env := newTestEnv(t)
	svc := NewListingService(env.listings, env.bookings, env.users, env.mailer)

	_, err := svc.Get(context.Background(), 31337)
	require.ErrorIs(t, err, ErrListingNotFound)
}
