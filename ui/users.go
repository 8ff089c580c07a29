package ui

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"adminconsole/models"
)

// UsersPage renders the users management screen.
func (h *Handler) UsersPage(w http.ResponseWriter, r *http.Request) {
	_ = h.Users.Load(r.Context())
	users, _, loadErr := h.Users.Snapshot()
	renderHTML(w, http.StatusOK, h.usersPage(principalFromRequest(r), users, loadErr))
}

// UpdateUserRole reassigns a user's role and patches the cached row in place.
// The acting principal's own row is never mutable, regardless of what the
// request claims.
func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	p := principalFromRequest(r)
	if p != nil && p.UID == id {
		http.Error(w, "Forbidden: cannot modify your own account", http.StatusForbidden)
		return
	}

	role := r.PostFormValue("role")
	if !models.ValidRole(role) {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}

	if err := h.Users.PatchField(r.Context(), id, "role", role); err != nil {
		h.rerenderUsers(w, r, "Failed to update user role")
		return
	}
	http.Redirect(w, r, "/dashboard/users", http.StatusSeeOther)
}

// ToggleUserStatus flips Active/Inactive for a user.
func (h *Handler) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p := principalFromRequest(r)
	if p != nil && p.UID == id {
		http.Error(w, "Forbidden: cannot modify your own account", http.StatusForbidden)
		return
	}

	user, ok := h.Users.Find(id)
	if !ok {
		h.rerenderUsers(w, r, "Failed to update user status")
		return
	}
	newStatus := models.StatusActive
	if user.Status == models.StatusActive {
		newStatus = models.StatusInactive
	}

	if err := h.Users.PatchField(r.Context(), id, "status", newStatus); err != nil {
		h.rerenderUsers(w, r, "Failed to update user status")
		return
	}
	http.Redirect(w, r, "/dashboard/users", http.StatusSeeOther)
}

// DeleteUser removes a user after the browser-side confirmation.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p := principalFromRequest(r)
	if p != nil && p.UID == id {
		http.Error(w, "Forbidden: cannot delete your own account", http.StatusForbidden)
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		h.rerenderUsers(w, r, "Failed to delete user")
		return
	}
	http.Redirect(w, r, "/dashboard/users", http.StatusSeeOther)
}

func (h *Handler) rerenderUsers(w http.ResponseWriter, r *http.Request, errMsg string) {
	users, _, _ := h.Users.Snapshot()
	renderHTML(w, http.StatusOK, h.usersPage(principalFromRequest(r), users, errMsg))
}

func (h *Handler) usersPage(p *models.Principal, users []models.User, errMsg string) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(users))
	for _, u := range users {
		self := p != nil && p.UID == u.ID
		rows = append(rows, html.Tr(
			html.Td(
				html.Div(html.Class("cell-title"), gomponents.Text(displayName(u))),
				html.Div(html.Class("cell-sub"), gomponents.Text(u.Email)),
			),
			html.Td(roleSelect(u, self)),
			html.Td(statusToggle(u, self)),
			html.Td(verifiedBadge(u.EmailVerified)),
			html.Td(gomponents.Text(formatDate(u.LastLogin))),
			html.Td(
				html.Form(
					html.Method("post"),
					html.Action("/dashboard/users/"+u.ID+"/delete"),
					html.Class("inline-form"),
					gomponents.Attr("onsubmit", confirmExpr("Are you sure you want to delete user "+u.Email+"?")),
					html.Button(
						html.Type("submit"),
						html.Class("action-link danger"),
						gomponents.If(self, html.Disabled()),
						gomponents.Text("Delete"),
					),
				),
			),
		))
	}

	body := []gomponents.Node{}
	if p != nil {
		body = append(body, html.Div(
			html.Class("card account-card"),
			html.H3(gomponents.Text("Your Account")),
			html.Div(
				html.Class("stats-grid"),
				statCard(p.Email, "Email"),
				statCard(models.RoleAdmin, "Role"),
				statCard(models.StatusActive, "Status"),
				statCard(yesNo(p.EmailVerified), "Verified"),
			),
		))
	}

	body = append(body,
		errorBanner(errMsg),
		html.Div(
			html.Class("card table-wrap"),
			html.Table(
				html.THead(html.Tr(
					html.Th(gomponents.Text("User")),
					html.Th(gomponents.Text("Role")),
					html.Th(gomponents.Text("Status")),
					html.Th(gomponents.Text("Email Verified")),
					html.Th(gomponents.Text("Last Login")),
					html.Th(gomponents.Text("Actions")),
				)),
				html.TBody(gomponents.Group(rows)),
			),
		),
	)

	if len(users) == 0 {
		body = append(body, html.Div(
			html.Class("card empty-state"),
			html.H3(gomponents.Text("No users found")),
			html.P(html.Class("muted"), gomponents.Text("Get started by creating your first user.")),
		))
	}

	body = append(body, usersStats(users))

	return appPage("Users Management", "users", p, body...)
}

// roleSelect submits on change; the control is disabled on the acting
// principal's own row.
func roleSelect(u models.User, self bool) gomponents.Node {
	options := make([]gomponents.Node, 0, 3)
	for _, role := range []string{models.RoleAdmin, models.RoleUser, models.RoleModerator} {
		options = append(options, html.Option(
			html.Value(role),
			gomponents.Text(role),
			gomponents.If(u.Role == role, html.Selected()),
		))
	}
	return html.Form(
		html.Method("post"),
		html.Action("/dashboard/users/"+u.ID+"/role"),
		html.Class("inline-form"),
		html.Select(
			html.Name("role"),
			gomponents.Attr("onchange", "this.form.submit()"),
			gomponents.If(self, html.Disabled()),
			gomponents.Group(options),
		),
	)
}

func statusToggle(u models.User, self bool) gomponents.Node {
	className := "badge-btn badge-red"
	if u.Status == models.StatusActive {
		className = "badge-btn badge-green"
	}
	return html.Form(
		html.Method("post"),
		html.Action("/dashboard/users/"+u.ID+"/status"),
		html.Class("inline-form"),
		html.Button(
			html.Type("submit"),
			html.Class(className),
			gomponents.If(self, html.Disabled()),
			gomponents.Text(u.Status),
		),
	)
}

func verifiedBadge(verified bool) gomponents.Node {
	if verified {
		return html.Span(html.Class("badge badge-green"), gomponents.Text("Verified"))
	}
	return html.Span(html.Class("badge badge-yellow"), gomponents.Text("Pending"))
}

func displayName(u models.User) string {
	if u.DisplayName == "" {
		return "No Name"
	}
	return u.DisplayName
}

func usersStats(users []models.User) gomponents.Node {
	active, admins, pending := 0, 0, 0
	for _, u := range users {
		if u.Status == models.StatusActive {
			active++
		}
		if u.Role == models.RoleAdmin {
			admins++
		}
		if !u.EmailVerified {
			pending++
		}
	}

	return html.Div(
		html.Class("stats-grid"),
		statCard(fmt.Sprintf("%d", len(users)), "Total Users"),
		statCard(fmt.Sprintf("%d", active), "Active Users"),
		statCard(fmt.Sprintf("%d", admins), "Admins"),
		statCard(fmt.Sprintf("%d", pending), "Pending Verification"),
	)
}
