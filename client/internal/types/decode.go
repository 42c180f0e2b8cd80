package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// The lenient types below accept ids as numbers or strings, prices as
// numbers or display strings, and dates in several layouts. They never
// return an error.

// scalarText returns the text of a JSON scalar, unquoting strings.
// null yields "". Objects and arrays are returned verbatim.
func scalarText(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return ""
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return string(b)
}

type lenientInt int64

func (v *lenientInt) UnmarshalJSON(b []byte) error {
	s := scalarText(b)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*v = lenientInt(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*v = lenientInt(int64(f))
		return nil
	}
	*v = lenientInt(ParsePrice(s))
	return nil
}

type lenientFloat float64

func (v *lenientFloat) UnmarshalJSON(b []byte) error {
	s := scalarText(b)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*v = lenientFloat(f)
		return nil
	}
	*v = lenientFloat(ParsePrice(s))
	return nil
}

type lenientString string

func (v *lenientString) UnmarshalJSON(b []byte) error {
	*v = lenientString(scalarText(b))
	return nil
}

type lenientTime time.Time

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", DateLayout}

func (v *lenientTime) UnmarshalJSON(b []byte) error {
	*v = lenientTime{}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] != '"' {
		// Bare numbers are epoch milliseconds.
		if ms, err := strconv.ParseInt(string(trimmed), 10, 64); err == nil {
			*v = lenientTime(time.UnixMilli(ms).UTC())
		}
		return nil
	}
	s := scalarText(b)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*v = lenientTime(t)
			return nil
		}
	}
	return nil
}

// UnmarshalJSON accepts numeric house numbers and pincodes.
func (a *Address) UnmarshalJSON(b []byte) error {
	type plain Address
	aux := struct {
		*plain
		HouseNo lenientString `json:"houseNo"`
		Pincode lenientString `json:"pincode"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.HouseNo, a.Pincode = string(aux.HouseNo), string(aux.Pincode)
	return nil
}

// UnmarshalJSON accepts the id and cost as numbers or strings.
func (p *Package) UnmarshalJSON(b []byte) error {
	type plain Package
	aux := struct {
		*plain
		PackageID   lenientInt   `json:"packageId"`
		PackageCost lenientFloat `json:"packageCost"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p.PackageID, p.PackageCost = int64(aux.PackageID), float64(aux.PackageCost)
	return nil
}

// UnmarshalJSON accepts the id and contact number as numbers or strings.
func (t *Travel) UnmarshalJSON(b []byte) error {
	type plain Travel
	aux := struct {
		*plain
		TravelID lenientInt `json:"travelId"`
		Contact  lenientInt `json:"contact"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t.TravelID, t.Contact = int64(aux.TravelID), int64(aux.Contact)
	return nil
}

// UnmarshalJSON accepts the id and rent as numbers or strings.
func (h *Hotel) UnmarshalJSON(b []byte) error {
	type plain Hotel
	aux := struct {
		*plain
		HotelID lenientInt   `json:"hotelId"`
		Rent    lenientFloat `json:"rent"`
	}{plain: (*plain)(h)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	h.HotelID, h.Rent = int64(aux.HotelID), float64(aux.Rent)
	return nil
}

// UnmarshalJSON accepts the id and rating as numbers or strings.
func (f *Feedback) UnmarshalJSON(b []byte) error {
	type plain Feedback
	aux := struct {
		*plain
		FeedbackID lenientInt `json:"feedbackId"`
		Rating     lenientInt `json:"rating"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	f.FeedbackID, f.Rating = int64(aux.FeedbackID), int(aux.Rating)
	return nil
}

// UnmarshalJSON accepts numeric booking ids, string amounts and the common
// date encodings.
func (bk *Booking) UnmarshalJSON(b []byte) error {
	type plain Booking
	aux := struct {
		*plain
		BookingID      lenientString `json:"bookingId"`
		Phone          lenientString `json:"phone"`
		CheckInDate    lenientString `json:"checkInDate"`
		CheckOutDate   lenientString `json:"checkOutDate"`
		NumberOfGuests lenientInt    `json:"numberOfGuests"`
		DestinationID  lenientString `json:"destinationId"`
		PackagePrice   lenientFloat  `json:"packagePrice"`
		TotalPrice     lenientFloat  `json:"totalPrice"`
		BookingDate    lenientTime   `json:"bookingDate"`
	}{plain: (*plain)(bk)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	bk.BookingID = string(aux.BookingID)
	bk.Phone = string(aux.Phone)
	bk.CheckInDate, bk.CheckOutDate = string(aux.CheckInDate), string(aux.CheckOutDate)
	bk.NumberOfGuests = int(aux.NumberOfGuests)
	bk.DestinationID = string(aux.DestinationID)
	bk.PackagePrice, bk.TotalPrice = float64(aux.PackagePrice), float64(aux.TotalPrice)
	bk.BookingDate = time.Time(aux.BookingDate)
	return nil
}
