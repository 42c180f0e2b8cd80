package client

import "github.com/wanderlust/travel-client/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Address  = types.Address
	Package  = types.Package
	Travel   = types.Travel
	Hotel    = types.Hotel
	Feedback = types.Feedback
	Booking  = types.Booking

	// Requests
	Credentials      = types.Credentials
	RegisterRequest  = types.RegisterRequest
	AdminCredentials = types.AdminCredentials
	FilePart         = types.FilePart

	// Responses
	Envelope        = types.Envelope
	LoginResponse   = types.LoginResponse
	ValidationError = types.ValidationError
)

// Result is the outcome of a façade call.
type Result[T any] = types.Result[T]

// Package types and booking status.
const (
	PackageStandard = types.PackageStandard
	PackageDeluxe   = types.PackageDeluxe
	PackagePremium  = types.PackagePremium
	BookingPending  = types.BookingPending
)

// Validate checks a form struct against its validation tags. Façades never
// call it; front ends run it before submitting.
func Validate(v any) error { return types.Validate(v) }

// StayDays, TotalPrice and ParsePrice expose the booking price rules.
func StayDays(checkIn, checkOut string) int { return types.StayDays(checkIn, checkOut) }

func TotalPrice(base float64, checkIn, checkOut string, guests int) float64 {
	return types.TotalPrice(base, checkIn, checkOut, guests)
}

func ParsePrice(s string) float64 { return types.ParsePrice(s) }
