package devserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wanderlust/travel-client/client"
	"github.com/wanderlust/travel-client/internal/devserver/respond"
)

// ListPackages GET /packages
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, s.store.Packages())
}

// CreatePackage POST /packages/createPackage?authKey=
func (s *Server) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var p client.Package
	if !decode(w, r, &p) {
		return
	}
	if err := client.Validate(p); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, s.store.CreatePackage(p))
}

// UpdatePackage PUT /packages/updatePackage?authKey=
func (s *Server) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var p client.Package
	if !decode(w, r, &p) {
		return
	}
	if err := client.Validate(p); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := s.store.UpdatePackage(p); err != nil {
		writeStoreError(w, err, "Package not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// DeletePackage DELETE /packages/removePackage?packageId=&authKey=
func (s *Server) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r, "packageId")
	if !ok {
		return
	}
	if err := s.store.DeletePackage(id); err != nil {
		writeStoreError(w, err, "Package not found")
		return
	}
	respond.WriteMessage(w, "Package removed")
}

// ListTravels GET /travelsList
func (s *Server) ListTravels(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, s.store.Travels())
}

// CreateTravel POST /travels?authKey=
func (s *Server) CreateTravel(w http.ResponseWriter, r *http.Request) {
	var t client.Travel
	if !decode(w, r, &t) {
		return
	}
	if err := client.Validate(t); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, s.store.CreateTravel(t))
}

// UpdateTravel PUT /travelsUpdate?authKey=
func (s *Server) UpdateTravel(w http.ResponseWriter, r *http.Request) {
	var t client.Travel
	if !decode(w, r, &t) {
		return
	}
	if err := s.store.UpdateTravel(t); err != nil {
		writeStoreError(w, err, "Travel not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, t)
}

// DeleteTravel DELETE /travelsDelete?travelId=&authKey=
func (s *Server) DeleteTravel(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r, "travelId")
	if !ok {
		return
	}
	if err := s.store.DeleteTravel(id); err != nil {
		writeStoreError(w, err, "Travel not found")
		return
	}
	respond.WriteMessage(w, "Travel removed")
}

// ListHotels GET /hotels
func (s *Server) ListHotels(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, s.store.Hotels())
}

func queryID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || id <= 0 {
		respond.WriteBadRequest(w, "invalid "+name)
		return 0, false
	}
	return id, true
}

func writeStoreError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, ErrNotFound) {
		respond.WriteNotFound(w, notFound)
		return
	}
	respond.WriteError(w, http.StatusInternalServerError, err.Error())
}
