package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/sync/errgroup"
)

// Storage folders. Namespacing by record kind keeps lifecycle-related assets
// grouped and avoids cross-kind filename collisions.
const (
	FolderEventImages       = "images"
	FolderBlogImages        = "blog-images"
	FolderBlogContentImages = "blog-content-images"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	return &CloudinaryService{
		cld: cld,
	}, nil
}

func (s *CloudinaryService) UploadFile(ctx context.Context, file multipart.File, folder string) (string, error) {
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	uploadResult, err := s.cld.Upload.Upload(ctx, fileBytes, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}

	return uploadResult.SecureURL, nil
}

func (s *CloudinaryService) UploadFileFromHeader(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return s.UploadFile(ctx, file, folder)
}

// HeaderUploader is what UploadAll needs from a blob backend. Satisfied by
// *CloudinaryService.
type HeaderUploader interface {
	UploadFileFromHeader(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)
}

// UploadAll uploads every file concurrently and returns the URLs in input
// order, not completion order — blog rendering aligns content images with
// [IMAGE] markers by position. The first failure cancels the rest and fails
// the whole batch; already-uploaded blobs are not rolled back.
func UploadAll(ctx context.Context, up HeaderUploader, files []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			url, err := up.UploadFileFromHeader(ctx, fh, folder)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
