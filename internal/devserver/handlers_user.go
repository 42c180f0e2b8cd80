package devserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wanderlust/travel-client/client"
	"github.com/wanderlust/travel-client/internal/devserver/respond"
)

// Signup POST /user/signup
func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	var req client.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	// the confirmation field never travels over the wire
	req.ConfirmPassword = req.Password
	if err := client.Validate(req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	id, err := s.store.Register(req)
	if errors.Is(err, ErrDuplicateUser) {
		respond.WriteError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"userId": id, "email": req.Email})
}

// Login POST /user/login with body {"userDto": {...}}
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserDto client.Credentials `json:"userDto"`
	}
	if !decode(w, r, &req) {
		return
	}
	id, err := s.store.Authenticate(req.UserDto.Email, req.UserDto.Password)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	key, err := s.issueKey(id, req.UserDto.Email)
	if err != nil {
		log.Error().Err(err).Msg("sign session key")
		respond.WriteError(w, http.StatusInternalServerError, "")
		return
	}
	s.store.OpenSession(key, req.UserDto.Email)
	respond.WriteJSON(w, http.StatusOK, client.LoginResponse{Key: key, UserID: id})
}

// Logout POST /user/logout?key=...
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.store.CloseSession(r.URL.Query().Get("key")); err != nil {
		respond.WriteBadRequest(w, "Invalid session key")
		return
	}
	respond.WriteMessage(w, "Logged Out")
}

// issueKey signs a session key carrying the user's email as subject.
func (s *Server) issueKey(userID int64, email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   email,
		Issuer:    "travel-devserver",
		Audience:  jwt.ClaimStrings{strconv.FormatInt(userID, 10)},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opts.JWTSecret)
}
