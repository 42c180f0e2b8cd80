package types

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the wire format of booking dates.
const DateLayout = "2006-01-02"

// StayDays returns the number of billable days between check-in and
// check-out, rounded up. Unknown or identical dates count as one day.
func StayDays(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return 1
	}
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 1
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 1
	}
	diff := out.Sub(in)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days == 0 {
		return 1
	}
	return days
}

// TotalPrice is base price × days × guests. Guests below one count as one.
func TotalPrice(base float64, checkIn, checkOut string, guests int) float64 {
	if guests < 1 {
		guests = 1
	}
	return base * float64(StayDays(checkIn, checkOut)) * float64(guests)
}

// ParsePrice reads a display price such as "₹15,000". The rupee sign,
// thousands separators and whitespace are removed, then the leading run of
// digits is taken as whole rupees, so "₹1,500.50" is 1500. Input without a
// leading digit yields 0.
func ParsePrice(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r == '₹' || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	end := 0
	for end < len(cleaned) && cleaned[end] >= '0' && cleaned[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(cleaned[:end], 10, 64)
	if err != nil {
		return 0
	}
	return float64(n)
}

// PrepareBooking fills the fields the backend expects the client to set on
// a new booking: pending status, the booking timestamp and the total price.
func PrepareBooking(b Booking, now time.Time) Booking {
	b.Status = BookingPending
	b.BookingDate = now
	b.TotalPrice = TotalPrice(b.PackagePrice, b.CheckInDate, b.CheckOutDate, b.NumberOfGuests)
	return b
}
