package services

import (
	"context"

	"github.com/introapp/freshintro/internal/client/models"
	"github.com/introapp/freshintro/internal/common"
	"github.com/introapp/freshintro/internal/netx"
)

// uploadAll turns each staged image into a remote object key, strictly in
// order and one at a time: sequential uploads bound concurrent resource use
// and give a deterministic first-failure point. The first failing file aborts
// the rest and is named in the returned UploadError.
func (s *DraftService) uploadAll(ctx context.Context, imgs []models.StagedImage) ([]string, error) {
	keys := make([]string, 0, len(imgs))

	for _, img := range imgs {
		authz, err := s.client.Presign(ctx, img.Name, img.ContentType)
		if err != nil {
			return nil, &common.UploadError{Filename: img.Name, Err: err}
		}

		if err := netx.UploadPresignedPost(s.uploadHTTP, authz.UploadURL, authz.Fields, img.Name, img.Data); err != nil {
			return nil, &common.UploadError{Filename: img.Name, Err: err}
		}

		keys = append(keys, authz.Key)
	}

	return keys, nil
}
