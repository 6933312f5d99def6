package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttachUploadsAndPersists(t *testing.T) {
	env := newTestEnv(t)
	store := &fakeStorage{}
	svc := NewPhotoService(env.photos, env.listings, store)
	ctx := context.Background()

	host := env.createUser(t, "cherry", "cherry@example.com")
	listing := env.createListing(t, host.ID, "Brianna's patio")

	photo, err := svc.Attach(ctx, listing.ID, "my house.jpg", strings.NewReader("img"), "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, listing.ID, photo.ListingID)
	require.Equal(t, "https://photos.test/my_house.jpg", photo.URL)
	require.Equal(t, []string{"my_house.jpg"}, store.uploads)
}

func TestAttachSwallowsUploadFailure(t *testing.T) {
	env := newTestEnv(t)
	store := &fakeStorage{fail: true}
	svc := NewPhotoService(env.photos, env.listings, store)
	ctx := context.Background()

	host := env.createUser(t, "cherry", "cherry@example.com")
	listing := env.createListing(t, host.ID, "Brianna's patio")

	// The row is still written with the address the object would have had.
	photo, err := svc.Attach(ctx, listing.ID, "house.jpg", strings.NewReader("img"), "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "https://photos.test/house.jpg", photo.URL)

	photos, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)
}

func TestAttachUnknownListing(t *testing.T) {
	env := newTestEnv(t)
	store := &fakeStorage{}
	svc := NewPhotoService(env.photos, env.listings, store)

	_, err := svc.Attach(context.Background(), 9999, "house.jpg", strings.NewReader("img"), "image/jpeg")
	require.ErrorIs(t, err, ErrListingNotFound)
	require.Empty(t, store.uploads, "nothing is uploaded for a missing listing")
}
