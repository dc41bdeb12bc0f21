package middlewares

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/services"
	"github.com/unrolled/render"
)

// AdminAPIKeyMiddleware gates mutating admin routes behind the shared secret.
// The caller may present it as the x-admin-api-key header, a bearer token or
// the admin_key query parameter, checked in that order. Rejection happens
// before the handler runs, so no side effect can precede it.
func AdminAPIKeyMiddleware(verifier services.KeyVerifier, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := extractAdminKey(r)
			if !verifier.Verify(key) {
				log.Printf("AdminAPIKeyMiddleware: chave inválida ou ausente para %s %s", r.Method, r.URL.Path)
				rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"error": "unauthorized",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractAdminKey(r *http.Request) string {
	if key := r.Header.Get("x-admin-api-key"); key != "" {
		return key
	}
	if auth := r.Header.Get("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return r.URL.Query().Get("admin_key")
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

// RecoverMiddleware keeps an unexpected panic from reaching the client
// unmasked: it logs the detail and answers a generic internal error.
func RecoverMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("RecoverMiddleware: panic em %s %s: %v", r.Method, r.URL.Path, rec)
					rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{
						"error": "internal server error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
