package client

import "strings"

// FilterPackages keeps packages whose name or description contains term,
// ignoring case. An empty term keeps everything.
func FilterPackages(items []Package, term string) []Package {
	return filter(items, term, func(p Package) []string {
		return []string{p.PackageName, p.PackageDescription}
	})
}

// FilterTravels matches on travel name and agent name.
func FilterTravels(items []Travel, term string) []Travel {
	return filter(items, term, func(t Travel) []string {
		return []string{t.TravelName, t.AgentName}
	})
}

// FilterHotels matches on hotel name and description.
func FilterHotels(items []Hotel, term string) []Hotel {
	return filter(items, term, func(h Hotel) []string {
		return []string{h.HotelName, h.HotelDescription}
	})
}

// FilterFeedback matches on customer name and feedback text.
func FilterFeedback(items []Feedback, term string) []Feedback {
	return filter(items, term, func(f Feedback) []string {
		return []string{f.CustomerName, f.Feedback}
	})
}

func filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(term)
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
