// File: services/storage/gcs.go
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStorageService stores files in the Firebase default bucket.
type GCSStorageService struct {
	Bucket *gcs.BucketHandle
}

// NewGCSStorageService wraps an initialized bucket handle.
func NewGCSStorageService(bucket *gcs.BucketHandle) *GCSStorageService {
	return &GCSStorageService{Bucket: bucket}
}

func (s *GCSStorageService) ListFiles(ctx context.Context, folder string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	prefix := folder + "/"
	it := s.Bucket.Objects(ctx, &gcs.Query{Prefix: prefix})

	names := []string{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		name := attrs.Name[len(prefix):]
		if name == "" {
			continue // the folder placeholder object itself
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *GCSStorageService) UploadFile(ctx context.Context, folder, filename string, contents io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	w := s.Bucket.Object(folder + "/" + filename).NewWriter(ctx)
	if _, err := io.Copy(w, contents); err != nil {
		w.Close()
		return fmt.Errorf("uploading %s/%s: %w", folder, filename, err)
	}
	return w.Close()
}

func (s *GCSStorageService) DeleteFile(ctx context.Context, folder, filename string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.Bucket.Object(folder + "/" + filename).Delete(ctx)
}

func (s *GCSStorageService) GetDownloadURL(ctx context.Context, folder, filename string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return s.Bucket.SignedURL(folder+"/"+filename, &gcs.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(expiry),
		Scheme:  gcs.SigningSchemeV4,
	})
}
