package api

import (
	"context"

	"github.com/wanderlust/travel-client/client/internal/types"
)

// ListHotels fetches the partner hotels.
func ListHotels(ctx context.Context, r Requester) types.Result[[]types.Hotel] {
	return list[types.Hotel](ctx, r, "/hotels", "Failed to fetch hotels")
}
