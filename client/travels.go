package client

import (
	"context"
	"encoding/json"

	"github.com/wanderlust/travel-client/client/internal/api"
	"github.com/wanderlust/travel-client/client/internal/types"
)

// TravelService manages partner travel agencies. Writes need the admin key.
type TravelService struct{ c *Client }

// List returns all travel agencies, falling back like PackageService.List.
func (s *TravelService) List(ctx context.Context) Result[[]Travel] {
	return readWithFallback(ctx, s.c, "travels",
		func(ctx context.Context) types.Result[[]Travel] { return api.ListTravels(ctx, s.c.rest) },
		s.c.data.Travels)
}

func (s *TravelService) Create(ctx context.Context, t Travel) Result[Travel] {
	return api.CreateTravel(ctx, s.c.rest, t)
}

func (s *TravelService) Update(ctx context.Context, t Travel) Result[Travel] {
	return api.UpdateTravel(ctx, s.c.rest, t)
}

func (s *TravelService) Delete(ctx context.Context, id int64) Result[json.RawMessage] {
	return api.DeleteTravel(ctx, s.c.rest, id)
}
