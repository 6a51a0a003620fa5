package devstub

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// storageKey builds the object key for a fresh upload. The original filename
// stays in front of a "---" marker so the editor can recover it when
// re-staging.
func storageKey(userID int, filename string) string {
	return fmt.Sprintf("user-profiles/%d/%s---%v", userID, filename, uuid.New())
}

func (s *Server) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey, // MINIO_ROOT_USER
			s.config.S3SecretKey, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return s3.NewPresignClient(client), nil
}

// presignPost authorizes one browser-style POST upload for the given key.
func (s *Server) presignPost(ctx context.Context, key string) (string, map[string]string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", nil, err
	}

	bucket := s.config.S3Bucket
	req, err := pc.PresignPostObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, func(o *s3.PresignPostOptions) {
		o.Expires = s.config.PresignExpiry
	})
	if err != nil {
		return "", nil, err
	}

	return req.URL, req.Values, nil
}
