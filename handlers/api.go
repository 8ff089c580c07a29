package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"adminconsole/models"
	"adminconsole/resource"
)

// API exposes the console's CRUD operations as JSON endpoints for
// programmatic clients, sharing the same managers as the rendered pages.
type API struct {
	Posts    *resource.Manager[models.Post]
	Users    *resource.Manager[models.User]
	validate *validator.Validate
}

// NewAPI creates the JSON API handler set.
func NewAPI(posts *resource.Manager[models.Post], users *resource.Manager[models.User]) *API {
	return &API{
		Posts:    posts,
		Users:    users,
		validate: validator.New(),
	}
}

// HealthCheck reports liveness.
func (h *API) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
