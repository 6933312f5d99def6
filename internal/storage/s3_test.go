package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	err    error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func newTestS3Storage(client s3API) *S3Storage {
	return &S3Storage{
		client: client,
		bucket: "eb-sharebnb-listing-photos",
		region: "us-west-1",
	}
}

func TestUploadSendsObject(t *testing.T) {
	fake := &fakeS3{}
	store := newTestS3Storage(fake)

	err := store.Upload(context.Background(), "house.jpg", bytes.NewReader([]byte("img")), "image/jpeg")
	require.NoError(t, err)
	require.Len(t, fake.inputs, 1)

	input := fake.inputs[0]
	assert.Equal(t, "eb-sharebnb-listing-photos", *input.Bucket)
	assert.Equal(t, "house.jpg", *input.Key)
	assert.Equal(t, "image/jpeg", *input.ContentType)

	body, err := io.ReadAll(input.Body)
	require.NoError(t, err)
	assert.Equal(t, "img", string(body))
}

func TestUploadOmitsEmptyContentType(t *testing.T) {
	fake := &fakeS3{}
	store := newTestS3Storage(fake)

	err := store.Upload(context.Background(), "house.jpg", bytes.NewReader(nil), "")
	require.NoError(t, err)
	assert.Nil(t, fake.inputs[0].ContentType)
}

func TestUploadReportsFailure(t *testing.T) {
	fake := &fakeS3{err: errors.New("bucket gone")}
	store := newTestS3Storage(fake)

	err := store.Upload(context.Background(), "house.jpg", bytes.NewReader(nil), "image/jpeg")
	require.Error(t, err)
}

func TestURLIsDeterministic(t *testing.T) {
	store := newTestS3Storage(&fakeS3{})

	assert.Equal(t,
		"https://eb-sharebnb-listing-photos.s3.us-west-1.amazonaws.com/house.jpg",
		store.URL("house.jpg"),
	)
}
