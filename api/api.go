// Package api exposes the Meseriasii marketplace REST endpoints.
package api

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/runtime/middleware"

	"github.com/meseriasii/meseriasii/auth"
	"github.com/meseriasii/meseriasii/repository"
	"github.com/meseriasii/meseriasii/storage"
)

// API holds the dependencies needed by the REST handlers.
type API struct {
	users      *repository.Users
	offers     *repository.Offers
	categories *repository.Categories
	reviews    *repository.Reviews
	tokens     *auth.Manager
	sessions   *auth.Registry
	audit      *auditLogger
}

//go:embed openapi.yaml
var openapiSpec []byte

// Option configures the API instance.
type Option func(*API)

// WithLogger sets the structured logger for audit events.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) {
		a.audit = newAuditLogger(logger)
	}
}

// New creates a new API instance over the given document store. The token
// manager and session registry are injected by the composition root so a
// single registry instance spans the whole process.
func New(store storage.Store, tokens *auth.Manager, sessions *auth.Registry, opts ...Option) *API {
	a := &API{
		users:      repository.NewUsers(store),
		offers:     repository.NewOffers(store),
		categories: repository.NewCategories(store),
		reviews:    repository.NewReviews(store),
		tokens:     tokens,
		sessions:   sessions,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.audit == nil {
		a.audit = newAuditLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}
	return a
}

// Router returns a chi.Router with all API routes mounted. Paths and
// response shapes match what the mobile client already consumes.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})

	r.Handle("/docs*", middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/openapi.yaml",
		Path:    "docs",
	}, nil))

	r.Handle("/redoc*", middleware.Redoc(middleware.RedocOpts{
		SpecURL: "/openapi.yaml",
		Path:    "redoc",
	}, nil))

	r.Post("/auth/login", a.Login)
	r.Post("/auth/register", a.Register)
	r.With(a.AuthMiddleware).Get("/auth/logout", a.Logout)
	r.With(a.AuthMiddleware).Post("/auth/change-password", a.ChangePassword)

	r.With(a.AuthMiddleware).Get("/users/{id}", a.GetUser)
	r.With(a.AuthMiddleware).Put("/users", a.UpdateUser)

	r.Route("/offers", func(r chi.Router) {
		r.Get("/", a.ListOffers)
		r.Get("/category/{categoryName}", a.OffersByCategory)
		r.With(a.AuthMiddleware).Get("/meserias/{id}", a.MeseriasOffers)
		r.With(a.AuthMiddleware).Get("/filter", a.FilterOffers)
		r.With(a.AuthMiddleware).Post("/", a.AddOffer)
		r.With(a.AuthMiddleware).Put("/", a.UpdateOffer)
		r.With(a.AuthMiddleware).Delete("/", a.DeleteOffer)
	})

	r.Get("/categories", a.ListCategories)

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", a.ListReviews)
		r.Get("/average/{id}", a.AverageReview)
		r.Post("/", a.AddReview)
	})

	return r
}
