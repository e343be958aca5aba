package aws

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// StoredObject is one listed blob.
type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// BlobStorage is the minimal blob-store surface the service needs. Writes
// unconditionally overwrite any existing object at the same key.
type BlobStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	ListByPrefix(ctx context.Context, prefix string) ([]StoredObject, error)
}

// S3Storage implements BlobStorage against an S3 bucket.
type S3Storage struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

// NewS3Storage creates an S3-backed BlobStorage. publicBaseURL, when set,
// overrides the URL returned for stored objects (CDN or LocalStack).
func NewS3Storage(cfg sdkaws.Config, bucket, publicBaseURL string) *S3Storage {
	client := s3.NewFromConfig(cfg)
	return &S3Storage{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Put writes the object at key, replacing whatever was there. Last write wins.
func (s *S3Storage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      sdkaws.String(s.bucket),
		Key:         sdkaws.String(key),
		Body:        body,
		ContentType: sdkaws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed for %s: %w", key, err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return out.Location, nil
}

// ListByPrefix lists every object under prefix.
func (s *S3Storage) ListByPrefix(ctx context.Context, prefix string) ([]StoredObject, error) {
	var objects []StoredObject

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: sdkaws.String(s.bucket),
		Prefix: sdkaws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list failed for prefix %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			stored := StoredObject{Key: sdkaws.ToString(obj.Key)}
			if obj.Size != nil {
				stored.Size = *obj.Size
			}
			if obj.LastModified != nil {
				stored.LastModified = *obj.LastModified
			}
			objects = append(objects, stored)
		}
	}

	return objects, nil
}
