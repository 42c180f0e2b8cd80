package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/wanderlust/travel-client/client/internal/types"
)

// UploadImage sends content as multipart field "file" together with the
// admin key and returns the stored image URL.
func UploadImage(ctx context.Context, r Requester, filename string, content io.Reader) types.Result[string] {
	env := r.UploadFile(ctx, "/images/upload",
		map[string]string{"authKey": r.AuthKey()},
		types.FilePart{Field: "file", Filename: filename, Content: content})
	if !env.Success {
		return types.Fail[string](backendError(env, "Failed to upload image"), env.Err)
	}
	var resp types.UploadResponse
	if err := env.Decode(&resp); err != nil {
		return types.Fail[string]("Failed to upload image", err)
	}
	return types.OK(resp.ImageURL)
}

// DeleteImage removes an uploaded image by file name.
func DeleteImage(ctx context.Context, r Requester, filename string) types.Result[struct{}] {
	path := withQuery("/images/delete/"+url.PathEscape(filename), "authKey", r.AuthKey())
	env := r.Request(ctx, http.MethodDelete, path, nil)
	if !env.Success {
		return types.Fail[struct{}](backendError(env, "Failed to delete image"), env.Err)
	}
	res := types.OK(struct{}{})
	res.Message = "Image deleted successfully"
	return res
}

// ListImages returns the URLs of all uploaded images. A reply without an
// "images" field yields an empty list.
func ListImages(ctx context.Context, r Requester) types.Result[[]string] {
	env := r.Request(ctx, http.MethodGet, withQuery("/images/list", "authKey", r.AuthKey()), nil)
	if !env.Success {
		return types.Fail[[]string](backendError(env, "Failed to list images"), env.Err)
	}
	var resp types.ListImagesResponse
	if err := env.Decode(&resp); err != nil {
		return types.Fail[[]string]("Failed to list images", err)
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	return types.OK(resp.Images)
}
