package api

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/ziyou/internal/api/handler"
	"github.com/albapepper/ziyou/internal/cache"
	"github.com/albapepper/ziyou/internal/catalog"
	"github.com/albapepper/ziyou/internal/config"
	"github.com/albapepper/ziyou/internal/session"
)

// Deps are the router's collaborators.
type Deps struct {
	Catalog  *catalog.Catalog
	Cache    *cache.Cache
	Sessions *session.Manager
	Gateway  handler.Gateway
	Config   *config.Config
	Logger   *slog.Logger
}

// NewRouter creates and configures the Chi router with all middleware and
// routes. Background work started for the router stops when ctx is done.
func NewRouter(ctx context.Context, d Deps) *chi.Mux {
	cfg := d.Config
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Cache", "ETag"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(d.Catalog, d.Cache, d.Sessions, d.Gateway, cfg, d.Logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Catalog (not session-scoped)
		r.Get("/games", h.ListGames)
		r.Get("/games/{id}", h.GetGame)

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(d.Sessions, cfg.IsProduction()))

			// Survey
			r.Post("/recommend", h.Recommend)
			r.Get("/survey", h.GetSurvey)
			r.Patch("/survey", h.EditSurvey)
			r.Post("/survey/next", h.NextSurveyStep)
			r.Post("/survey/back", h.PreviousSurveyStep)
			r.Post("/survey/cancel", h.CancelSurvey)
			r.Delete("/survey/error", h.DismissSurveyError)

			// Results
			r.Get("/results", h.GetResults)
			r.Post("/results/reshuffle", h.Reshuffle)

			// Compare
			r.Get("/compare", h.GetCompare)

			// Wishlist
			r.Get("/wishlist", h.GetWishlist)
			r.Post("/wishlist/{id}/toggle", h.ToggleWishlist)
			r.Put("/wishlist/{id}", h.AddToWishlist)
			r.Delete("/wishlist/{id}", h.RemoveFromWishlist)

			// Theme
			r.Get("/theme", h.GetTheme)
			r.Post("/theme/toggle", h.ToggleTheme)
			r.Put("/theme/{name}", h.SetTheme)
		})
	})

	return r
}
