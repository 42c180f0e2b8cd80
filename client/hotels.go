package client

import (
	"context"

	"github.com/wanderlust/travel-client/client/internal/api"
	"github.com/wanderlust/travel-client/client/internal/types"
)

// HotelService reads partner hotels.
type HotelService struct{ c *Client }

func (s *HotelService) List(ctx context.Context) Result[[]Hotel] {
	return readWithFallback(ctx, s.c, "hotels",
		func(ctx context.Context) types.Result[[]Hotel] { return api.ListHotels(ctx, s.c.rest) },
		s.c.data.Hotels)
}
