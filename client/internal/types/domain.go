package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Package types offered by the agency.
const (
	PackageStandard = "STANDARD"
	PackageDeluxe   = "DELUXE"
	PackagePremium  = "PREMIUM"
)

// BookingPending is the status every new booking starts in.
const BookingPending = "PENDING"

// Address is the postal address shared by travels and hotels.
type Address struct {
	HouseNo    string `json:"houseNo,omitempty"`
	StreetName string `json:"streetName,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	Pincode    string `json:"pincode,omitempty"`
}

// Package is a bookable tour package.
type Package struct {
	PackageID          int64   `json:"packageId,omitempty"`
	PackageName        string  `json:"packageName" validate:"required,min=2"`
	PackageDescription string  `json:"packageDescription,omitempty"`
	PackageCost        float64 `json:"packageCost" validate:"gte=0"`
	PackageType        string  `json:"packageType" validate:"required,oneof=STANDARD DELUXE PREMIUM"`
	PaymentDetails     string  `json:"paymentDetails,omitempty"`
	Image              string  `json:"image,omitempty"`
	ImageURL           string  `json:"imageUrl,omitempty"`
}

// Travel is a partner travel agency.
type Travel struct {
	TravelID   int64   `json:"travelId,omitempty"`
	TravelName string  `json:"travelName" validate:"required"`
	AgentName  string  `json:"agentName" validate:"required"`
	Contact    int64   `json:"contact,omitempty"`
	Addr       Address `json:"addr"`
}

// Hotel is a partner hotel.
type Hotel struct {
	HotelID          int64   `json:"hotelId,omitempty"`
	HotelName        string  `json:"hotelName"`
	HotelType        string  `json:"hotelType,omitempty"`
	HotelDescription string  `json:"hotelDescription,omitempty"`
	Rent             float64 `json:"rent"`
	Addr             Address `json:"addr"`
}

// Feedback is a customer testimonial.
type Feedback struct {
	FeedbackID   int64  `json:"feedbackId,omitempty"`
	CustomerName string `json:"customerName" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Feedback     string `json:"feedback" validate:"required"`
	Destination  string `json:"destination,omitempty"`
}

// Booking is a reservation request for a destination or package.
type Booking struct {
	BookingID       string    `json:"bookingId,omitempty"`
	CustomerName    string    `json:"customerName" validate:"required,min=2"`
	Email           string    `json:"email" validate:"required,email"`
	Phone           string    `json:"phone" validate:"required"`
	CheckInDate     string    `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string    `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	NumberOfGuests  int       `json:"numberOfGuests" validate:"min=1"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	DestinationID   string    `json:"destinationId,omitempty"`
	DestinationName string    `json:"destinationName,omitempty"`
	PackagePrice    float64   `json:"packagePrice"`
	TotalPrice      float64   `json:"totalPrice"`
	BookingDate     time.Time `json:"bookingDate"`
	Status          string    `json:"status"`
}
