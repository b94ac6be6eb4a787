package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaRoot prefixes every folder this service writes to.
const MediaRoot = "emdad"

var ErrMediaUnavailable = errors.New("media storage is not configured")

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

// UploadedAsset is what the catalog keeps about an uploaded file.
type UploadedAsset struct {
	URL          string
	PublicID     string
	ResourceType string
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// MediaFolder builds a folder path under MediaRoot, e.g. emdad/products/<slug>/primary.
func MediaFolder(parts ...string) string {
	return path.Join(append([]string{MediaRoot}, parts...)...)
}

// Upload stores one file. resourceType is "image", "video" or "auto".
func (s *CloudinaryService) Upload(ctx context.Context, file multipart.File, filename, folder, resourceType string) (*UploadedAsset, error) {
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   resourceType,
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		uploadParams.PublicID = strings.TrimSuffix(filename, path.Ext(filename))
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("upload successful but no URL returned")
	}

	return &UploadedAsset{
		URL:          result.SecureURL,
		PublicID:     result.PublicID,
		ResourceType: result.ResourceType,
	}, nil
}

// UploadImage uploads a single image
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename, folder string) (*UploadedAsset, error) {
	return s.Upload(ctx, file, filename, folder, "image")
}

// UploadMultipleImages uploads multiple images in order
func (s *CloudinaryService) UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]*UploadedAsset, error) {
	assets := make([]*UploadedAsset, 0, len(files))

	for i, fileHeader := range files {
		asset, err := s.uploadHeader(ctx, fileHeader, fmt.Sprintf("%s_%d", fileHeader.Filename, i), folder)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, nil
}

func (s *CloudinaryService) uploadHeader(ctx context.Context, fileHeader *multipart.FileHeader, filename, folder string) (*UploadedAsset, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	return s.UploadImage(ctx, file, filename, folder)
}

// DeleteAsset deletes one asset by public ID
func (s *CloudinaryService) DeleteAsset(ctx context.Context, publicID, resourceType string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	return err
}

// DeleteFolder deletes every asset under folderPath, then the folders.
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folderPath string) error {
	if _, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folderPath},
	}); err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folderPath, err)
	}
	log.Printf("[cloudinary] deleted assets under %s", folderPath)

	// empty folders; Cloudinary often removes them itself
	for _, folder := range []string{folderPath + "/primary", folderPath + "/other", folderPath} {
		if _, err := s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folder}); err != nil {
			log.Printf("[cloudinary] could not remove folder %s: %v", folder, err)
		}
	}

	return nil
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var cloudinaryService *CloudinaryService

// InitCloudinary configures the shared media client. Empty credentials leave
// uploads disabled.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("⚠️  Cloudinary credentials not set, uploads disabled")
		return nil
	}
	svc, err := NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = svc
	log.Println("✅ Cloudinary initialized")
	return nil
}

// GetCloudinaryService returns the shared media client.
func GetCloudinaryService() (*CloudinaryService, error) {
	if cloudinaryService == nil {
		return nil, ErrMediaUnavailable
	}
	return cloudinaryService, nil
}
