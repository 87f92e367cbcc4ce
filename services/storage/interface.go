// File: services/storage/interface.go
package storage

import (
	"context"
	"io"
	"time"
)

// Folders used for shared documents in the default bucket.
const (
	FloorPlansFolder      = "floorPlans"
	AnnualDocumentsFolder = "annualDocuments"
)

// Service is the blob-storage surface for floor plans and annual documents.
type Service interface {
	ListFiles(ctx context.Context, folder string) ([]string, error)
	UploadFile(ctx context.Context, folder, filename string, contents io.Reader) error
	DeleteFile(ctx context.Context, folder, filename string) error
	GetDownloadURL(ctx context.Context, folder, filename string, expiry time.Duration) (string, error)
}
