package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBookingDecode_LenientScalars(t *testing.T) {
	t.Parallel()
	cases := []struct {
		body string
		id   string
		date time.Time
	}{
		{`{"bookingId":7,"bookingDate":"2025-03-01T10:00:00Z"}`, "7", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{`{"bookingId":"BK-1","bookingDate":"2025-03-01"}`, "BK-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{`{"bookingId":null,"bookingDate":1740823200000}`, "", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{`{"bookingDate":[2025,3,1]}`, "", time.Time{}},
	}
	for _, c := range cases {
		var b Booking
		if err := json.Unmarshal([]byte(c.body), &b); err != nil {
			t.Fatalf("%s: %v", c.body, err)
		}
		if b.BookingID != c.id || !b.BookingDate.Equal(c.date) {
			t.Fatalf("%s: got id %q date %v", c.body, b.BookingID, b.BookingDate)
		}
	}
}

func TestPackageDecode_LenientScalars(t *testing.T) {
	t.Parallel()
	var p Package
	body := `{"packageId":"12","packageName":"Goa","packageCost":"₹12,000","packageType":"STANDARD"}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatal(err)
	}
	if p.PackageID != 12 || p.PackageCost != 12000 || p.PackageName != "Goa" || p.PackageType != PackageStandard {
		t.Fatalf("unexpected package: %+v", p)
	}
}

func TestDecode_RoundTripKeepsValues(t *testing.T) {
	t.Parallel()
	in := Hotel{HotelID: 3, HotelName: "Taj", Rent: 4500.5, Addr: Address{HouseNo: "12", Pincode: "400001"}}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Hotel
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("got %+v want %+v", out, in)
	}
}

func TestFeedbackDecode_StringRating(t *testing.T) {
	t.Parallel()
	var f Feedback
	if err := json.Unmarshal([]byte(`{"feedbackId":"5","customerName":"Ravi","rating":"4","feedback":"ok"}`), &f); err != nil {
		t.Fatal(err)
	}
	if f.FeedbackID != 5 || f.Rating != 4 || f.CustomerName != "Ravi" {
		t.Fatalf("unexpected feedback: %+v", f)
	}
}
