package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3Uploader stores meal images and returns their public URL.
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Uploader(ctx context.Context, region, bucket, publicURL string) (*S3Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for S3: %w", err)
	}
	return &S3Uploader{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores a "data:<mime>;base64,<data>" image under prefix.
func (u *S3Uploader) Upload(ctx context.Context, dataURL, prefix string) (string, error) {
	contentType, ext, imageData, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("meal-images/%s/%s%s", prefix, uuid.NewString(), ext)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.publicURL, key), nil
}

// DecodeDataURL splits a base64 data URL into content type, file extension
// and decoded bytes.
func DecodeDataURL(dataURL string) (contentType, ext string, data []byte, err error) {
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok {
		return "", "", nil, fmt.Errorf("invalid base64 image")
	}
	mediaType, found := strings.CutPrefix(meta, "data:")
	if !found {
		return "", "", nil, fmt.Errorf("invalid base64 image header")
	}
	contentType, _, _ = strings.Cut(mediaType, ";") // "image/jpeg"
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", nil, fmt.Errorf("unsupported content type %q", contentType)
	}

	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		} else {
			ext = "." + strings.TrimPrefix(contentType, "image/")
		}
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return contentType, ext, data, nil
}
