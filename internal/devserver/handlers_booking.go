package devserver

import (
	"net/http"

	"github.com/wanderlust/travel-client/client"
	"github.com/wanderlust/travel-client/internal/devserver/respond"
)

// CreateBooking POST /bookings
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var b client.Booking
	if !decode(w, r, &b) {
		return
	}
	if err := client.Validate(b); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if b.Status == "" {
		b.Status = client.BookingPending
	}
	respond.WriteJSON(w, http.StatusCreated, s.store.CreateBooking(b))
}

// ListBookings GET /bookings
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, s.store.Bookings())
}

// SubmitFeedback POST /feedback
func (s *Server) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var f client.Feedback
	if !decode(w, r, &f) {
		return
	}
	if err := client.Validate(f); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, s.store.CreateFeedback(f))
}

// ListFeedback GET /feedback
func (s *Server) ListFeedback(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, s.store.Feedback())
}
