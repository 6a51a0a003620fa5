package client

import (
	"context"

	"github.com/introapp/freshintro/internal/client/models"
)

// Client is the editor's view of the backend. Implementations must map a
// "no profile yet" response onto common.ErrProfileNotFound and surface server
// detail text for failed writes via common.ServerError.
type Client interface {
	// GetMyProfile returns the caller's stored profile, or
	// common.ErrProfileNotFound when none exists yet.
	GetMyProfile(ctx context.Context) (*models.RemoteProfile, error)

	// Presign asks the storage broker for a one-file upload authorization.
	Presign(ctx context.Context, filename, contentType string) (*models.PresignedUpload, error)

	// CreateOrUpdateProfile writes the draft plus uploaded object keys.
	CreateOrUpdateProfile(ctx context.Context, req *models.WriteProfileRequest) error

	// FetchImage downloads an already-uploaded image so it can be re-staged
	// locally. Returns the raw bytes and the reported content type.
	FetchImage(ctx context.Context, url string) ([]byte, string, error)
}
