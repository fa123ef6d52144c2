package api

import (
	"encoding/json"
	"net/http"

	"github.com/bozhidarvelkov/pixelmorph/internal/user"
)

type UserHandler struct {
	users user.Service
}

func NewUserHandler(users user.Service) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile returns the stored user for the authenticated subject,
// including the current credit balance.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, dbUser)
}

type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty"`
	Photo     *string `json:"photo,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username != nil {
		dbUser.Username = *req.Username
	}
	if req.Photo != nil {
		dbUser.Photo = *req.Photo
	}
	if req.FirstName != nil {
		dbUser.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		dbUser.LastName = *req.LastName
	}

	if err := h.users.UpdateProfile(r.Context(), dbUser); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, dbUser)
}

func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	deleted, err := h.users.Delete(r.Context(), dbUser.ClerkID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, deleted)
}
