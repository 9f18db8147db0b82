package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/recisbogor/recup-backend/config"
)

const (
	FolderTeamPhotos = "team_photos"
	FolderDocuments  = "documents"
)

// Uploader pushes a file to the media host and returns its retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

// FolderFor routes a form field to a media folder: anything that looks like
// a photo lands in team_photos, the rest in documents.
func FolderFor(field string) string {
	if strings.Contains(field, "photo") {
		return FolderTeamPhotos
	}
	return FolderDocuments
}

// CloudinaryUploader implements Uploader on top of the Cloudinary API.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cfg *config.Config) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return resp.SecureURL, nil
}
