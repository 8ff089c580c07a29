package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"adminconsole/middleware"
	"adminconsole/models"
	"adminconsole/store"
)

// UserPatch carries a single-field user mutation: a role reassignment or a
// status toggle.
type UserPatch struct {
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}

func (h *API) GetUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Load(r.Context()); err != nil {
		log.Printf("Error fetching users: %v", err)
		http.Error(w, "Failed to load users", http.StatusInternalServerError)
		return
	}

	users, _, _ := h.Users.Snapshot()
	writeJSON(w, users)
}

func (h *API) PatchUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	principal := middleware.PrincipalFromContext(r)
	if principal != nil && principal.UID == id {
		http.Error(w, "Forbidden: cannot modify your own account", http.StatusForbidden)
		return
	}

	var patch UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var field string
	var value string
	switch {
	case patch.Role != "":
		if !models.ValidRole(patch.Role) {
			http.Error(w, "invalid role", http.StatusBadRequest)
			return
		}
		field, value = "role", patch.Role
	case patch.Status != "":
		if patch.Status != models.StatusActive && patch.Status != models.StatusInactive {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		field, value = "status", patch.Status
	default:
		http.Error(w, "role or status is required", http.StatusBadRequest)
		return
	}

	if err := h.Users.PatchField(r.Context(), id, field, value); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Printf("Error updating user %s: %v", id, err)
		http.Error(w, "Failed to update user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *API) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	principal := middleware.PrincipalFromContext(r)
	if principal != nil && principal.UID == id {
		http.Error(w, "Forbidden: cannot delete your own account", http.StatusForbidden)
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		http.Error(w, "Failed to delete user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
