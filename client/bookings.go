package client

import (
	"context"
	"time"

	"github.com/wanderlust/travel-client/client/internal/api"
	"github.com/wanderlust/travel-client/client/internal/types"
)

// BookingService creates and lists bookings. There is no fallback data for
// bookings; a failed read is reported as such.
type BookingService struct {
	c   *Client
	now func() time.Time
}

// Create stamps the booking as PENDING with the current time and the total
// price for its stay, then submits it.
func (s *BookingService) Create(ctx context.Context, b Booking) Result[Booking] {
	return api.CreateBooking(ctx, s.c.rest, types.PrepareBooking(b, s.now()))
}

func (s *BookingService) List(ctx context.Context) Result[[]Booking] {
	return api.ListBookings(ctx, s.c.rest)
}
