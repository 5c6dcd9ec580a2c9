package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SpacesService stores user avatars in an S3-compatible Spaces bucket.
type SpacesService struct {
	client     *s3.Client
	bucket     string
	region     string
	AvatarRoot string
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, avatarRoot string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	return &SpacesService{
		client:     s3.NewFromConfig(cfg),
		bucket:     bucket,
		region:     region,
		AvatarRoot: strings.TrimPrefix(avatarRoot, "/"),
	}, nil
}

// UploadAvatar stores the image publicly and returns its URL.
func (s *SpacesService) UploadAvatar(ctx context.Context, userID int64, data []byte, contentType string) (string, error) {
	key := s.avatarKey(userID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
		ACL:         "public-read",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar for user %d: %w", userID, err)
	}

	return s.AvatarURL(userID), nil
}

// DeleteAvatar removes the stored image. Missing objects are not an
// error; the bucket treats that delete as a no-op.
func (s *SpacesService) DeleteAvatar(ctx context.Context, userID int64) error {
	key := s.avatarKey(userID)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete avatar for user %d: %w", userID, err)
	}
	return nil
}

func (s *SpacesService) AvatarURL(userID int64) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, s.avatarKey(userID))
}

func (s *SpacesService) avatarKey(userID int64) string {
	return fmt.Sprintf("%s/%d.jpg", s.AvatarRoot, userID)
}
