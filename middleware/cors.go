package middleware

import (
	"log"
	"net/http"
)

var (
	allowedOrigins  []string
	developmentMode bool
)

// SetAllowedOrigins installs the CORS allow-list from configuration.
func SetAllowedOrigins(origins []string) {
	allowedOrigins = origins
}

// SetDevelopmentMode relaxes the origin check for local development.
func SetDevelopmentMode(dev bool) {
	developmentMode = dev
}

// EnableCORS creates a middleware that handles CORS headers for the API
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		origins := getAllowedOrigins()

		if isAllowedOrigin(origin, origins) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else if developmentMode && origin != "" {
			// In development mode, be more permissive
			log.Printf("Development mode: allowing origin %s", origin)
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else if len(origins) > 0 {
			w.Header().Set("Access-Control-Allow-Origin", origins[0])
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, X-Requested-With, Accept, Origin")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "3600")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getAllowedOrigins returns the list of allowed origins based on environment
func getAllowedOrigins() []string {
	if len(allowedOrigins) > 0 {
		return allowedOrigins
	}
	return []string{
		"http://localhost:8080",
		"http://localhost:3000",
	}
}

// isAllowedOrigin checks if the provided origin is in the allowed list
func isAllowedOrigin(origin string, origins []string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range origins {
		if origin == allowed {
			return true
		}
	}
	return false
}
