package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"showdb/internal/database"
	"showdb/internal/types"
	"showdb/internal/utils"
)

// AuthHandler implements signup and login. Passwords are stored and compared
// as plain strings, matching the behavior of the system this replaces; it
// remains a known defect, not a supported configuration for real deployments.
type AuthHandler struct {
	db *sql.DB
}

func NewAuthHandler(db *sql.DB) *AuthHandler {
	return &AuthHandler{db: db}
}

// Test is the probe endpoint used by clients to check the backend is up.
func (h *AuthHandler) Test(w http.ResponseWriter, r *http.Request) {
	utils.RespondMessage(w, "Backend working", http.StatusOK)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondMessage(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondMessage(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	_, err := database.GetUserByEmail(h.db, req.Email)
	if err == nil {
		utils.RespondMessage(w, "Email already registered", http.StatusBadRequest)
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("auth: signup lookup failed: %v", err)
		utils.RespondMessage(w, "Server error", http.StatusInternalServerError)
		return
	}

	user, err := database.CreateUser(h.db, req.Name, req.Email, req.Password)
	if err != nil {
		log.Printf("auth: failed to create user: %v", err)
		utils.RespondMessage(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, types.AuthResponse{
		Message: "Signup successful",
		User:    types.PublicUser{Name: user.Name, Email: user.Email},
	}, http.StatusOK)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondMessage(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := database.GetUserByEmail(h.db, req.Email)
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondMessage(w, "Wrong email", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("auth: login lookup failed: %v", err)
		utils.RespondMessage(w, "Server error", http.StatusInternalServerError)
		return
	}

	if user.Password != req.Password {
		utils.RespondMessage(w, "Wrong password", http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, types.AuthResponse{
		Message: "Login successful",
		User:    types.PublicUser{Name: user.Name, Email: user.Email},
	}, http.StatusOK)
}
