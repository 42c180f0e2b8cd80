package client

import "testing"

func TestFilters(t *testing.T) {
	ds := []Package{
		{PackageName: "Kerala Backwaters", PackageDescription: "houseboats"},
		{PackageName: "Rajasthan Heritage", PackageDescription: "royal PALACES"},
	}
	if got := FilterPackages(ds, ""); len(got) != 2 {
		t.Fatalf("empty term must keep all, got %d", len(got))
	}
	if got := FilterPackages(ds, "palaces"); len(got) != 1 || got[0].PackageName != "Rajasthan Heritage" {
		t.Fatalf("description match failed: %+v", got)
	}
	if got := FilterPackages(ds, "KERALA"); len(got) != 1 {
		t.Fatalf("case-insensitive name match failed: %+v", got)
	}
	if got := FilterPackages(ds, "goa"); len(got) != 0 {
		t.Fatalf("expected no match: %+v", got)
	}

	travels := []Travel{{TravelName: "Kerala Tours", AgentName: "Rajeev Kumar"}}
	if len(FilterTravels(travels, "rajeev")) != 1 || len(FilterTravels(travels, "hotel")) != 0 {
		t.Fatal("travel filter")
	}
	hotels := []Hotel{{HotelName: "Luxury Resort", HotelDescription: "spa and pool"}}
	if len(FilterHotels(hotels, "SPA")) != 1 {
		t.Fatal("hotel filter")
	}
	fb := []Feedback{{CustomerName: "Rajesh", Feedback: "Excellent service"}}
	if len(FilterFeedback(fb, "excellent")) != 1 || len(FilterFeedback(fb, "Kerala")) != 0 {
		t.Fatal("feedback filter")
	}
}
