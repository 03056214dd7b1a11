package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jrwalden/clientdesk/internal/auth"
	"github.com/jrwalden/clientdesk/internal/http/client"
	"github.com/jrwalden/clientdesk/internal/http/contract"
	"github.com/jrwalden/clientdesk/internal/http/export"
	"github.com/jrwalden/clientdesk/internal/http/importcsv"
	"github.com/jrwalden/clientdesk/internal/http/invoice"
	"github.com/jrwalden/clientdesk/internal/http/meeting"
	"github.com/jrwalden/clientdesk/internal/http/profile"
	"github.com/jrwalden/clientdesk/internal/http/project"
	"github.com/jrwalden/clientdesk/internal/http/report"
)

type Handlers struct {
	Clients   *client.Handler
	Invoices  *invoice.Handler
	Projects  *project.Handler
	Contracts *contract.Handler
	Meetings  *meeting.Handler
	Reports   *report.Handler
	Profile   *profile.Handler
	Import    *importcsv.Handler
	Export    *export.Handler
}

func New(verifier *auth.Verifier, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		// Reads are open; every mutation needs a valid session token.
		r.Use(requireUserForWrites(verifier))

		jsonRoute := func(path string, routes func(chi.Router)) {
			r.Route(path, func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				routes(r)
			})
		}

		jsonRoute("/clients", h.Clients.Routes)
		jsonRoute("/invoices", h.Invoices.Routes)
		jsonRoute("/projects", h.Projects.Routes)
		jsonRoute("/contracts", h.Contracts.Routes)
		jsonRoute("/meetings", h.Meetings.Routes)

		r.Route("/reports", h.Reports.Routes)

		// The profile is the authenticated user's own record, so even
		// reads need the token.
		r.Route("/profile", func(r chi.Router) {
			r.Use(verifier.RequireUser)
			r.Use(middleware.AllowContentType("application/json"))
			h.Profile.Routes(r)
		})

		r.Route("/import", h.Import.Routes)
		r.Route("/export", h.Export.Routes)
	})

	return router
}

// requireUserForWrites applies the auth check to mutating methods only.
func requireUserForWrites(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		protected := verifier.RequireUser(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				protected.ServeHTTP(w, r)
			}
		})
	}
}
