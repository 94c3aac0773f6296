package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"url-shortener/internal/models"
	"url-shortener/internal/service"
	"url-shortener/internal/shortcode"
	"url-shortener/internal/storage"
	"url-shortener/pkg/response"
)

// reservedPrefix marks the slice of the path space that belongs to the API,
// not to short codes. A syntactically valid code starting with it is still
// rejected as unknown.
const reservedPrefix = "api"

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Message string `json:"message,omitempty"`
}

// handleHealthCheck handles health check requests to the service root.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, healthResponse{
		Status:  "healthy",
		Service: "URL Shortener API",
	})
}

// handleAPIHealth handles health check requests to the API namespace.
func handleAPIHealth(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, healthResponse{
		Status:  "ok",
		Message: "URL Shortener API is running",
	})
}

// shortenRequest represents the request payload for creating a shortened URL.
// URL is a pointer so a missing field can be told apart from an empty one.
type shortenRequest struct {
	URL *string `json:"url" validate:"required"`
}

// shortenResponse represents the response payload for a successful shorten operation.
type shortenResponse struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
}

// statsResponse represents the response payload for a stats lookup.
type statsResponse struct {
	URL       string    `json:"url"`
	ShortCode string    `json:"short_code"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

func toStatsResponse(m *models.Mapping) statsResponse {
	return statsResponse{
		URL:       m.OriginalURL,
		ShortCode: m.ShortCode,
		Clicks:    m.Clicks,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// handleShortenURL handles POST requests to shorten a URL.
//
// The request body must carry a url field. The handler validates the input,
// calls the shortening service and returns the generated short code together
// with the full short URL built from the service base URL.
func handleShortenURL(svc URLService, validate *validator.Validate, baseURL string) http.HandlerFunc {
	const op = "api.http.handleShortenURL"

	return func(w http.ResponseWriter, r *http.Request) {
		var req shortenRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.MissingURLFieldResponse)
			return
		}

		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.MissingURLFieldResponse)
			return
		}

		m, err := svc.Shorten(r.Context(), *req.URL)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyURL):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.EmptyURLResponse)
			case errors.Is(err, service.ErrInvalidURL):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.InvalidURLFormatResponse)
			default:
				httplog.LogEntrySetFields(r.Context(), map[string]any{"op": op, "err": err})

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.ServerErrorResponse)
			}
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, shortenResponse{
			ShortCode: m.ShortCode,
			ShortURL:  baseURL + "/" + m.ShortCode,
		})
	}
}

// handleRedirect handles GET requests for a short code and issues a temporary
// redirect to the original URL.
//
// Reserved-prefix, malformed and unknown codes are all reported as 404 so the
// path space leaks nothing about which codes exist.
func handleRedirect(svc URLService, codeLength int) http.HandlerFunc {
	const op = "api.http.handleRedirect"

	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "shortCode")

		if strings.HasPrefix(code, reservedPrefix) || !shortcode.Valid(code, codeLength) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.ShortCodeNotFoundResponse)
			return
		}

		m, err := svc.Resolve(r.Context(), code)
		if err != nil {
			if errors.Is(err, storage.ErrMappingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.ShortCodeNotFoundResponse)
				return
			}

			httplog.LogEntrySetFields(r.Context(), map[string]any{"op": op, "err": err})

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ServerErrorResponse)
			return
		}

		http.Redirect(w, r, m.OriginalURL, http.StatusFound)
	}
}

// handleGetStats handles GET requests for the usage statistics of a short code.
func handleGetStats(svc URLService, codeLength int) http.HandlerFunc {
	const op = "api.http.handleGetStats"

	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "shortCode")

		if !shortcode.Valid(code, codeLength) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.InvalidShortCodeResponse)
			return
		}

		m, err := svc.Stats(r.Context(), code)
		if err != nil {
			if errors.Is(err, storage.ErrMappingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.ShortCodeNotFoundResponse)
				return
			}

			httplog.LogEntrySetFields(r.Context(), map[string]any{"op": op, "err": err})

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ServerErrorResponse)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, toStatsResponse(m))
	}
}
