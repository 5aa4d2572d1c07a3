package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gameshelf/internal/catalog"
	"github.com/desertthunder/gameshelf/internal/models"
	"github.com/desertthunder/gameshelf/internal/repositories"
	"github.com/desertthunder/gameshelf/internal/shared"
)

const (
	defaultBgFrom = "#ff7e5f"
	defaultBgTo   = "#feb47b"
)

// AuthHandler serves profile listing and the signup/signin endpoints.
//
// Both signup and signin trigger the deterministic library seeder so a fresh
// account lands with a populated shelf.
type AuthHandler struct {
	profiles *repositories.ProfileRepository
	seeder   *catalog.Seeder
	logger   *log.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(profiles *repositories.ProfileRepository, seeder *catalog.Seeder, logger *log.Logger) *AuthHandler {
	return &AuthHandler{profiles: profiles, seeder: seeder, logger: logger}
}

// Register wires the auth routes onto the router.
func (h *AuthHandler) Register(r Router) {
	r.Handle(http.MethodGet, "/profiles", http.HandlerFunc(h.Profiles))
	r.Handle(http.MethodPost, "/signup", http.HandlerFunc(h.Signup))
	r.Handle(http.MethodPost, "/signin", http.HandlerFunc(h.Signin))
}

// Profiles handles GET /profiles.
func (h *AuthHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.List()
	if err != nil {
		h.logger.Error("list profiles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// Signup handles POST /signup.
//
// Requires name and username; duplicate usernames are rejected with a 400.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
		BgFrom   string `json:"bgFrom"`
		BgTo     string `json:"bgTo"`
	}
	if err := readJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Name and username are required")
		return
	}

	if body.Name == "" || body.Username == "" {
		writeError(w, http.StatusBadRequest, "Name and username are required")
		return
	}

	if body.BgFrom == "" {
		body.BgFrom = defaultBgFrom
	}
	if body.BgTo == "" {
		body.BgTo = defaultBgTo
	}

	profile := models.Profile{
		Name:       body.Name,
		Username:   body.Username,
		Avatar:     body.Avatar,
		LastOnline: repositories.OnlineNow,
		BgFrom:     body.BgFrom,
		BgTo:       body.BgTo,
	}

	if err := h.profiles.Create(profile); err != nil {
		if errors.Is(err, shared.ErrDuplicateUsername) {
			writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		h.logger.Error("signup failed", "username", body.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	h.logger.Info("new user signed up", "username", body.Username)
	h.seeder.Seed(r.Context(), body.Username, catalog.DefaultSeedCount)

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("User %s signed up successfully!", body.Username),
		"user":    profile,
	})
}

// Signin handles POST /signin.
//
// Marks the profile online and re-runs the seeder, which no-ops for users who
// already own anything.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
	}
	if err := readJSON(r, &body); err != nil || body.Username == "" {
		writeError(w, http.StatusBadRequest, "No username provided")
		return
	}

	if err := h.profiles.SetLastOnline(body.Username, repositories.OnlineNow); err != nil {
		h.logger.Error("signin update failed", "username", body.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "failed")
		return
	}

	h.logger.Info("user signed in", "username", body.Username)
	h.seeder.Seed(r.Context(), body.Username, catalog.DefaultSeedCount)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("User %s signed in successfully!", body.Username),
	})
}
