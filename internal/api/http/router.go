// Package http provides the HTTP delivery layer for the URL shortener service.
package http

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"url-shortener/internal/models"
)

// URLService defines the interface for the core URL shortening business logic.
type URLService interface {
	// Shorten validates the provided raw URL and creates a mapping for it.
	// It returns the created mapping, or service.ErrEmptyURL / service.ErrInvalidURL
	// when the input is rejected before any store mutation.
	Shorten(ctx context.Context, rawURL string) (*models.Mapping, error)

	// Resolve retrieves the mapping for a short code and records a click.
	// It returns storage.ErrMappingNotFound wrapped if the code is unknown.
	Resolve(ctx context.Context, shortCode string) (*models.Mapping, error)

	// Stats retrieves a snapshot of the mapping for a short code.
	Stats(ctx context.Context, shortCode string) (*models.Mapping, error)
}

// getValidate initializes a new validator instance for validating incoming request payloads.
// It customizes tag name extraction from struct fields to match JSON tags.
func getValidate() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// NewRouter initializes and returns a new HTTP router with all routes and middleware configured.
//
// The API lives under /api; everything else at the top level is treated as a
// short code. Codes with the reserved "api" prefix are rejected by the
// redirect handler so they can never shadow API routes.
func NewRouter(logger *httplog.Logger, urlSvc URLService, baseURL string, codeLength int) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger, []string{"/metrics"}))
	r.Use(middleware.Recoverer)
	r.Use(collectMetrics)

	baseURL = strings.TrimSuffix(baseURL, "/")

	r.Get("/", handleHealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		validate := getValidate()

		r.Get("/health", handleAPIHealth)
		r.Post("/shorten", handleShortenURL(urlSvc, validate, baseURL))
		r.Get("/stats/{shortCode}", handleGetStats(urlSvc, codeLength))
	})

	r.Get("/{shortCode}", handleRedirect(urlSvc, codeLength))

	return r
}
