package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wanderlust/travel-client/client/internal/types"
)

// ListPackages fetches every tour package.
func ListPackages(ctx context.Context, r Requester) types.Result[[]types.Package] {
	return list[types.Package](ctx, r, "/packages", "Failed to fetch packages")
}

// CreatePackage adds a package. Requires the admin key.
func CreatePackage(ctx context.Context, r Requester, p types.Package) types.Result[types.Package] {
	path := withQuery("/packages/createPackage", "authKey", r.AuthKey())
	return write[types.Package](ctx, r, http.MethodPost, path, p, "Failed to create package")
}

// UpdatePackage replaces a package identified by its packageId.
func UpdatePackage(ctx context.Context, r Requester, p types.Package) types.Result[types.Package] {
	path := withQuery("/packages/updatePackage", "authKey", r.AuthKey())
	return write[types.Package](ctx, r, http.MethodPut, path, p, "Failed to update package")
}

// DeletePackage removes the package with the given id.
func DeletePackage(ctx context.Context, r Requester, id int64) types.Result[json.RawMessage] {
	path := withQuery("/packages/removePackage", "packageId", strconv.FormatInt(id, 10), "authKey", r.AuthKey())
	return write[json.RawMessage](ctx, r, http.MethodDelete, path, nil, "Failed to delete package")
}
