package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts media storage for venue, court and avatar images.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns the
	// permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL resolves a public identifier to a servable URL.
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
