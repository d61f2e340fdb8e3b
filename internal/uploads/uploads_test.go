package uploads

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageFilename(t *testing.T) {
	t.Run("keeps the extension, lowercased", func(t *testing.T) {
		name := NewImageFilename("Workbench Photo.JPG")
		assert.True(t, strings.HasSuffix(name, ".jpg"), name)
		assert.NotContains(t, name, " ")
	})

	t.Run("extensionless originals stay extensionless", func(t *testing.T) {
		name := NewImageFilename("photo")
		assert.NotContains(t, name, ".")
	})

	t.Run("names do not collide", func(t *testing.T) {
		assert.NotEqual(t, NewImageFilename("a.png"), NewImageFilename("a.png"))
	})
}

func TestValidImageType(t *testing.T) {
	assert.True(t, ValidImageType("image/jpeg"))
	assert.True(t, ValidImageType("image/png"))
	assert.False(t, ValidImageType("application/pdf"))
	assert.False(t, ValidImageType(""))
}

type capturedPut struct {
	input *s3.PutObjectInput
	err   error
}

func (c *capturedPut) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	c.input = input
	if c.err != nil {
		return nil, c.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("objects land under the projects prefix", func(t *testing.T) {
		client := &capturedPut{}
		up := NewS3Uploader(client, "cw-media", "us-east-1", "")

		url, err := up.Upload(ctx, "abc.jpg", "image/jpeg", strings.NewReader("data"), 4)
		require.NoError(t, err)

		require.NotNil(t, client.input)
		assert.Equal(t, "cw-media", aws.ToString(client.input.Bucket))
		assert.Equal(t, "projects/abc.jpg", aws.ToString(client.input.Key))
		assert.Equal(t, "image/jpeg", aws.ToString(client.input.ContentType))
		assert.Equal(t, "https://cw-media.s3.us-east-1.amazonaws.com/projects/abc.jpg", url)
	})

	t.Run("a base URL override replaces the bucket host", func(t *testing.T) {
		up := NewS3Uploader(&capturedPut{}, "cw-media", "us-east-1", "https://images.classikwoods.com")

		url, err := up.Upload(ctx, "abc.jpg", "image/jpeg", strings.NewReader("data"), 4)
		require.NoError(t, err)
		assert.Equal(t, "https://images.classikwoods.com/projects/abc.jpg", url)
	})

	t.Run("oversized uploads are refused before any network call", func(t *testing.T) {
		client := &capturedPut{}
		up := NewS3Uploader(client, "cw-media", "us-east-1", "")

		_, err := up.Upload(ctx, "abc.jpg", "image/jpeg", strings.NewReader("data"), MaxImageSize+1)
		assert.ErrorIs(t, err, ErrTooLarge)
		assert.Nil(t, client.input)
	})

	t.Run("put failures surface to the caller", func(t *testing.T) {
		up := NewS3Uploader(&capturedPut{err: assert.AnError}, "cw-media", "us-east-1", "")

		_, err := up.Upload(ctx, "abc.jpg", "image/jpeg", strings.NewReader("data"), 4)
		assert.Error(t, err)
	})
}
