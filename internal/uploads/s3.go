package uploads

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the subset of the S3 API the uploader needs.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader writes objects under projects/ in a single bucket and returns
// the public URL for each stored object.
type S3Uploader struct {
	client  S3Client
	bucket  string
	region  string
	baseURL string
}

// NewS3Uploader builds an uploader for the given bucket. baseURL may be
// empty, in which case the standard S3 public URL form is used.
func NewS3Uploader(client S3Client, bucket, region, baseURL string) *S3Uploader {
	return &S3Uploader{
		client:  client,
		bucket:  bucket,
		region:  region,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload stores the object and returns its public URL. The caller only
// inserts the referencing row after this succeeds.
func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	if size > MaxImageSize {
		return "", ErrTooLarge
	}
	if !ValidImageType(contentType) {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	key := "projects/" + filename
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return u.publicURL(key), nil
}

func (u *S3Uploader) publicURL(key string) string {
	if u.baseURL != "" {
		return u.baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
