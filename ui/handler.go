// Package ui renders the console's pages and handles their form posts.
package ui

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	gomponents "maragu.dev/gomponents"

	"adminconsole/middleware"
	"adminconsole/models"
	"adminconsole/resource"
)

// IdentityService is the slice of the identity client the pages need.
type IdentityService interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password, confirmPassword string) (string, error)
}

// Handler serves the rendered console.
type Handler struct {
	Identity IdentityService
	Posts    *resource.Manager[models.Post]
	Users    *resource.Manager[models.User]

	// SecureCookies marks the session cookie Secure (set in production).
	SecureCookies bool

	validate *validator.Validate
}

func NewHandler(identity IdentityService, posts *resource.Manager[models.Post], users *resource.Manager[models.User], secureCookies bool) *Handler {
	return &Handler{
		Identity:      identity,
		Posts:         posts,
		Users:         users,
		SecureCookies: secureCookies,
		validate:      validator.New(),
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func principalFromRequest(r *http.Request) *models.Principal {
	return middleware.PrincipalFromContext(r)
}
