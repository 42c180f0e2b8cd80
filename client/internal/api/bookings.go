package api

import (
	"context"
	"net/http"

	"github.com/wanderlust/travel-client/client/internal/types"
)

// CreateBooking submits a booking as is. Callers normally pass it through
// types.PrepareBooking first.
func CreateBooking(ctx context.Context, r Requester, b types.Booking) types.Result[types.Booking] {
	return write[types.Booking](ctx, r, http.MethodPost, "/bookings", b, "Booking failed")
}

// ListBookings fetches all bookings.
func ListBookings(ctx context.Context, r Requester) types.Result[[]types.Booking] {
	return list[types.Booking](ctx, r, "/bookings", "Failed to fetch bookings")
}
