package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"adminconsole/config"
	"adminconsole/handlers"
	"adminconsole/identity"
	"adminconsole/middleware"
	"adminconsole/models"
	"adminconsole/resource"
	"adminconsole/store"
	"adminconsole/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.IsProduction() {
		log.Println("Running in development environment")
	}

	ctx := context.Background()

	// Initialize the identity provider client. Without credentials the
	// server still comes up, with auth checks disabled.
	idClient, err := identity.NewClient(ctx, cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize Firebase: %v", err)
		log.Println("Auth token verification will be disabled!")
	} else {
		middleware.SetVerifier(idClient)
	}

	// Connect the document store through the same app handle.
	var st store.Store = store.Unavailable{}
	if idClient != nil {
		fs, err := store.NewFirestore(ctx, idClient.App())
		if err != nil {
			log.Fatal(err)
		}
		defer fs.Close()
		st = fs
	} else {
		log.Println("Warning: No Firestore backend; CRUD operations will fail until configured")
	}

	posts := resource.NewManager(st, models.PostsCollection,
		func(d store.Document) models.Post { return models.PostFromDoc(d.ID, d.Data) },
		resource.WithSort[models.Post](func(a, b models.Post) bool { return a.CreatedAt > b.CreatedAt }),
		resource.WithLoadErrorMessage[models.Post]("Failed to load posts. Make sure Firestore is enabled."),
	)
	users := resource.NewManager(st, models.UsersCollection,
		func(d store.Document) models.User { return models.UserFromDoc(d.ID, d.Data) },
		resource.WithLocalPatch[models.User](models.User.ApplyPatch),
		resource.WithLoadErrorMessage[models.User]("Failed to load users"),
	)

	var idSvc ui.IdentityService
	if idClient != nil {
		idSvc = idClient
	}
	pages := ui.NewHandler(idSvc, posts, users, cfg.SessionCookieSecure)
	api := handlers.NewAPI(posts, users)

	middleware.SetAllowedOrigins(cfg.CORSAllowedOrigins)
	middleware.SetDevelopmentMode(!cfg.IsProduction())

	r := mux.NewRouter()
	registerPageRoutes(r, pages)
	registerAPIRoutes(r.PathPrefix("/api").Subrouter(), api)

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + cfg.Port,
		WriteTimeout: cfg.WriteTimeout,
		ReadTimeout:  cfg.ReadTimeout,
	}

	log.Printf("Starting server on port %s...", cfg.Port)
	log.Fatal(srv.ListenAndServe())
}

// registerPageRoutes sets up the rendered console routes
func registerPageRoutes(r *mux.Router, pages *ui.Handler) {
	r.HandleFunc("/", pages.Home).Methods("GET")
	r.HandleFunc("/login", pages.LoginForm).Methods("GET")
	r.HandleFunc("/login", pages.Login).Methods("POST")
	r.HandleFunc("/signup", pages.SignupForm).Methods("GET")
	r.HandleFunc("/signup", pages.Signup).Methods("POST")
	r.HandleFunc("/logout", pages.Logout).Methods("POST")
	r.HandleFunc("/charts", pages.ChartsPage).Methods("GET")
	r.HandleFunc("/static/app.css", pages.Stylesheet).Methods("GET")

	// Everything under /dashboard requires a live session.
	dashboard := r.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(middleware.SessionGate)
	dashboard.HandleFunc("", pages.Dashboard).Methods("GET")
	dashboard.HandleFunc("/users", pages.UsersPage).Methods("GET")
	dashboard.HandleFunc("/users/{id}/role", pages.UpdateUserRole).Methods("POST")
	dashboard.HandleFunc("/users/{id}/status", pages.ToggleUserStatus).Methods("POST")
	dashboard.HandleFunc("/users/{id}/delete", pages.DeleteUser).Methods("POST")
	dashboard.HandleFunc("/posts", pages.PostsPage).Methods("GET")
	dashboard.HandleFunc("/posts", pages.CreatePost).Methods("POST")
	dashboard.HandleFunc("/posts/{id}", pages.UpdatePost).Methods("POST")
	dashboard.HandleFunc("/posts/{id}/delete", pages.DeletePost).Methods("POST")
}

// registerAPIRoutes sets up the JSON API routes
func registerAPIRoutes(r *mux.Router, api *handlers.API) {
	r.Use(middleware.EnableCORS)

	// Public routes (no auth required)
	r.HandleFunc("/health", api.HealthCheck).Methods("GET", "OPTIONS")

	// Create a subrouter for authenticated routes
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.APIAuth)

	protected.HandleFunc("/posts", api.GetPosts).Methods("GET")
	protected.HandleFunc("/posts", api.AddPost).Methods("POST")
	protected.HandleFunc("/posts/{id}", api.UpdatePost).Methods("PUT")
	protected.HandleFunc("/posts/{id}", api.DeletePost).Methods("DELETE")

	protected.HandleFunc("/users", api.GetUsers).Methods("GET")
	protected.HandleFunc("/users/{id}", api.PatchUser).Methods("PATCH")
	protected.HandleFunc("/users/{id}", api.DeleteUser).Methods("DELETE")
}
