package ui

import (
	"net/http"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"adminconsole/middleware"
)

const sessionMaxAge = 3600 // ID tokens expire after an hour

func (h *Handler) setSessionCookie(w http.ResponseWriter, idToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    idToken,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// Home renders the public landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, authPage("Welcome",
		html.H1(gomponents.Text("Welcome")),
		html.P(html.Class("muted"), gomponents.Text("Sign in or create an account to continue.")),
		html.Div(
			html.Class("auth-actions"),
			html.A(html.Href("/login"), html.Class("btn btn-primary"), gomponents.Text("Login")),
			html.A(html.Href("/signup"), html.Class("btn btn-secondary"), gomponents.Text("Sign Up")),
		),
	))
}

// LoginForm renders the sign-in view.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, loginPage("", ""))
}

// Login authenticates the posted credentials and opens a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if h.Identity == nil {
		// Auth disabled in development mode; the session gate waves
		// everything through anyway.
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	idToken, err := h.Identity.SignIn(r.Context(), email, password)
	if err != nil {
		renderHTML(w, http.StatusOK, loginPage(err.Error(), email))
		return
	}

	h.setSessionCookie(w, idToken)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// SignupForm renders the account-creation view.
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, signupPage("", ""))
}

// Signup creates an account and opens a session. Password preconditions are
// checked by the identity client before any provider call.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirmPassword")

	if h.Identity == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	idToken, err := h.Identity.SignUp(r.Context(), email, password, confirm)
	if err != nil {
		renderHTML(w, http.StatusOK, signupPage(err.Error(), email))
		return
	}

	h.setSessionCookie(w, idToken)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout terminates the session and returns to the login view.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func loginPage(errMsg, email string) gomponents.Node {
	return authPage("Sign in",
		html.H1(gomponents.Text("Welcome Back")),
		errorBanner(errMsg),
		html.Form(
			html.Method("post"),
			html.Action("/login"),
			html.Class("auth-form"),
			html.Label(gomponents.Text("Email Address")),
			html.Input(html.Type("email"), html.Name("email"), html.Placeholder("Enter your email"), html.Value(email), html.Required()),
			html.Label(gomponents.Text("Password")),
			html.Input(html.Type("password"), html.Name("password"), html.Placeholder("Enter your password"), html.Required()),
			html.Button(html.Type("submit"), html.Class("btn btn-primary"), gomponents.Text("Sign In")),
		),
		html.P(html.Class("auth-switch"),
			gomponents.Text("Don't have an account? "),
			html.A(html.Href("/signup"), gomponents.Text("Create Account")),
		),
	)
}

func signupPage(errMsg, email string) gomponents.Node {
	return authPage("Create account",
		html.H1(gomponents.Text("Create Account")),
		errorBanner(errMsg),
		html.Form(
			html.Method("post"),
			html.Action("/signup"),
			html.Class("auth-form"),
			html.Label(gomponents.Text("Email Address")),
			html.Input(html.Type("email"), html.Name("email"), html.Placeholder("Enter your email"), html.Value(email), html.Required()),
			html.Label(gomponents.Text("Password")),
			html.Input(html.Type("password"), html.Name("password"), html.Placeholder("Create a password"), html.Required()),
			html.P(html.Class("hint"), gomponents.Text("Password must be at least 8 characters long")),
			html.Label(gomponents.Text("Confirm Password")),
			html.Input(html.Type("password"), html.Name("confirmPassword"), html.Placeholder("Confirm your password"), html.Required()),
			html.Button(html.Type("submit"), html.Class("btn btn-primary"), gomponents.Text("Create Account")),
		),
		html.P(html.Class("auth-switch"),
			gomponents.Text("Already have an account? "),
			html.A(html.Href("/login"), gomponents.Text("Sign In")),
		),
	)
}
