package storage

import (
	"RecipeSite/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtension(t *testing.T) {
	ext, err := ValidateExtension("Buuz.JPG", AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	_, err = ValidateExtension("buuz.gif", AllowImage...)
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)

	_, err = ValidateExtension("buuz", AllowImage...)
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)

	ext, err = ValidateExtension("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, ".txt", ext)
}

func TestNewAwsS3RequiresBucket(t *testing.T) {
	_, err := NewAwsS3(context.Background(), S3Config{Region: "ap-east-1"})
	assert.ErrorIs(t, err, domain.ErrStorageDisabled)
}

func TestPublicLinks(t *testing.T) {
	s := &awsS3{bucket: "recipes-bucket", region: "ap-east-1"}

	link := s.GetPublicLinkKey("recipes/1-abc.png")
	assert.Equal(t, "https://recipes-bucket.s3.ap-east-1.amazonaws.com/recipes/1-abc.png", link)
	assert.Equal(t, "recipes/1-abc.png", s.GetObjectKeyFromLink(link))
	assert.Empty(t, s.GetObjectKeyFromLink("https://example.com/recipes/1-abc.png"))
}
