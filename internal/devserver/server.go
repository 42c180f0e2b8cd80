// Package devserver is an in-memory implementation of the travel backend's
// REST surface. It backs local development of travelctl and the SDK's
// integration tests; nothing is persisted.
package devserver

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wanderlust/travel-client/devmode"
	"github.com/wanderlust/travel-client/internal/devserver/recovery"
	"github.com/wanderlust/travel-client/internal/devserver/respond"
)

// Options tunes a Server. Zero values take defaults.
type Options struct {
	// AdminKey gates catalog writes and image calls via the authKey parameter.
	AdminKey string
	// JWTSecret signs session keys; a random secret is generated when empty.
	JWTSecret []byte
	TokenTTL  time.Duration
	// PublicURL prefixes image URLs; the request host is used when empty.
	PublicURL      string
	MaxUploadBytes int64
	// AllowedOrigins lists the browser origins granted CORS access.
	AllowedOrigins []string
}

// Server serves the REST surface from a Store.
type Server struct {
	store *Store
	opts  Options
}

// New builds a Server over store.
func New(store *Store, opts Options) *Server {
	if opts.AdminKey == "" {
		opts.AdminKey = devmode.AdminKey
	}
	if len(opts.JWTSecret) == 0 {
		opts.JWTSecret = make([]byte, 32)
		_, _ = rand.Read(opts.JWTSecret)
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 5 << 20
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	return &Server{store: store, opts: opts}
}

// Handler returns the router wrapped with CORS for browser front ends.
func (s *Server) Handler() http.Handler {
	headersOk := gorillaHandlers.AllowedHeaders([]string{"X-Requested-With", "Authorization", "Content-Type", "X-Request-ID", "traceparent"})
	originsOk := gorillaHandlers.AllowedOrigins(s.opts.AllowedOrigins)
	methodsOk := gorillaHandlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"})
	return gorillaHandlers.CORS(originsOk, headersOk, methodsOk)(s.Router())
}

// Router wires every route.
func (s *Server) Router() *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(instrument)

	// Users
	root.HandleFunc("/user/signup", s.Signup).Methods("POST")
	root.HandleFunc("/user/login", s.Login).Methods("POST")
	root.HandleFunc("/user/logout", s.Logout).Methods("POST")

	// Packages
	root.HandleFunc("/packages", s.ListPackages).Methods("GET")
	root.Handle("/packages/createPackage", s.admin(s.CreatePackage)).Methods("POST")
	root.Handle("/packages/updatePackage", s.admin(s.UpdatePackage)).Methods("PUT")
	root.Handle("/packages/removePackage", s.admin(s.DeletePackage)).Methods("DELETE")

	// Travels
	root.HandleFunc("/travelsList", s.ListTravels).Methods("GET")
	root.Handle("/travels", s.admin(s.CreateTravel)).Methods("POST")
	root.Handle("/travelsUpdate", s.admin(s.UpdateTravel)).Methods("PUT")
	root.Handle("/travelsDelete", s.admin(s.DeleteTravel)).Methods("DELETE")

	// Hotels
	root.HandleFunc("/hotels", s.ListHotels).Methods("GET")

	// Bookings and feedback
	root.HandleFunc("/bookings", s.CreateBooking).Methods("POST")
	root.HandleFunc("/bookings", s.ListBookings).Methods("GET")
	root.HandleFunc("/feedback", s.SubmitFeedback).Methods("POST")
	root.HandleFunc("/feedback", s.ListFeedback).Methods("GET")

	// Images
	root.Handle("/images/upload", s.admin(s.UploadImage)).Methods("POST")
	root.Handle("/images/list", s.admin(s.ListImages)).Methods("GET")
	root.Handle("/images/delete/{filename}", s.admin(s.DeleteImage)).Methods("DELETE")
	root.HandleFunc("/images/{filename}", s.ServeImage).Methods("GET")

	// Operations
	root.HandleFunc("/healthz", s.Health).Methods("GET")
	root.Handle("/metrics", promhttp.Handler()).Methods("GET")

	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteNotFound(w, "no route for "+r.Method+" "+r.URL.Path)
	})
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteError(w, http.StatusMethodNotAllowed, "")
	})
	return root
}

// admin rejects requests whose authKey (query or form field) does not match.
func (s *Server) admin(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("authKey")
		if key == "" && r.Method == http.MethodPost {
			r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
			key = r.FormValue("authKey")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(s.opts.AdminKey)) != 1 {
			respond.WriteUnauthorized(w, "Invalid auth key")
			return
		}
		next(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "UP",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return false
	}
	return true
}
