package client

import (
	"context"
	"encoding/json"

	"github.com/wanderlust/travel-client/client/internal/api"
	"github.com/wanderlust/travel-client/client/internal/types"
)

// PackageService manages tour packages. Writes need the admin key.
type PackageService struct{ c *Client }

// List returns all packages, or the fallback packages when the read fails
// and the fallback mode allows it.
func (s *PackageService) List(ctx context.Context) Result[[]Package] {
	return readWithFallback(ctx, s.c, "packages",
		func(ctx context.Context) types.Result[[]Package] { return api.ListPackages(ctx, s.c.rest) },
		s.c.data.Packages)
}

func (s *PackageService) Create(ctx context.Context, p Package) Result[Package] {
	return api.CreatePackage(ctx, s.c.rest, p)
}

func (s *PackageService) Update(ctx context.Context, p Package) Result[Package] {
	return api.UpdatePackage(ctx, s.c.rest, p)
}

func (s *PackageService) Delete(ctx context.Context, id int64) Result[json.RawMessage] {
	return api.DeletePackage(ctx, s.c.rest, id)
}
