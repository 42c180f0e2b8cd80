package client

import (
	"context"
	"io"

	"github.com/wanderlust/travel-client/client/internal/api"
)

// ImageService manages uploaded images. Every call sends the admin key.
type ImageService struct{ c *Client }

// Upload stores content under filename and returns the image URL.
func (s *ImageService) Upload(ctx context.Context, filename string, content io.Reader) Result[string] {
	return api.UploadImage(ctx, s.c.rest, filename, content)
}

// Delete removes the image stored under filename.
func (s *ImageService) Delete(ctx context.Context, filename string) Result[struct{}] {
	return api.DeleteImage(ctx, s.c.rest, filename)
}

// List returns image URLs; an empty list when the backend sends none.
func (s *ImageService) List(ctx context.Context) Result[[]string] {
	return api.ListImages(ctx, s.c.rest)
}
