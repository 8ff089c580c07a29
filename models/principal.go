package models

import (
	"strings"
	"time"
)

// Principal is the authenticated identity as observed from Firebase Auth.
// It is created and destroyed entirely by the identity provider; the app
// only reads it off a verified session token.
type Principal struct {
	UID            string    `json:"uid"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	EmailVerified  bool      `json:"emailVerified"`
	CreationTime   time.Time `json:"creationTime"`
	LastSignInTime time.Time `json:"lastSignInTime"`
}

// AuthorName returns the name to stamp on records this principal creates:
// display name, then the local part of the email, then "Anonymous".
func (p *Principal) AuthorName() string {
	if p == nil {
		return "Anonymous"
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Email != "" {
		if local, _, found := strings.Cut(p.Email, "@"); found && local != "" {
			return local
		}
		return p.Email
	}
	return "Anonymous"
}
