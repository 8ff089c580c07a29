package ui

import (
	"net/http"
	"time"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// Dashboard renders the account overview for the signed-in principal.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	p := principalFromRequest(r)

	stats := []struct {
		Label string
		Value string
	}{
		{"Email", orNA(p.Email)},
		{"Email Verified", yesNo(p.EmailVerified)},
		{"Account Created", dateOrNA(p.CreationTime)},
		{"Last Sign In", dateOrNA(p.LastSignInTime)},
	}

	rows := make([]gomponents.Node, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, html.Div(
			html.Class("stat-row"),
			html.Span(html.Class("stat-label"), gomponents.Text(s.Label+":")),
			html.Span(gomponents.Text(s.Value)),
		))
	}

	renderHTML(w, http.StatusOK, appPage(
		"Dashboard",
		"dashboard",
		p,
		html.Div(
			html.Class("card"),
			html.H3(gomponents.Text("Welcome back, "+p.AuthorName()+"!")),
			html.P(html.Class("muted"), gomponents.Text("Here's your dashboard overview and account information.")),
		),
		html.Div(
			html.Class("card"),
			html.H3(gomponents.Text("Account Information")),
			gomponents.Group(rows),
		),
	))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func dateOrNA(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}
