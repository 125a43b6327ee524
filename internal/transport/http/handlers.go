package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shortlabs/linkd/internal/domain"
	"github.com/shortlabs/linkd/internal/service"
)

// Handler holds the HTTP handlers for the link shortener
type Handler struct {
	links     service.LinkService
	metrics   *Metrics
	startedAt time.Time
}

// NewHandler creates a new HTTP handler
func NewHandler(links service.LinkService, metrics *Metrics) *Handler {
	return &Handler{
		links:     links,
		metrics:   metrics,
		startedAt: time.Now(),
	}
}

// CreateLink handles POST /api/links
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Invalid JSON in create link request: %v", err)
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	link, shortURL, err := h.links.CreateLink(r.Context(), req.URL, req.Code)
	if err != nil {
		log.Printf("[ERROR] Failed to create link for '%s': %v", req.URL, err)
		writeServiceError(w, err)
		return
	}

	h.metrics.LinkCreated()
	writeJSON(w, http.StatusCreated, domain.CreateLinkResponse{
		OK:       true,
		Link:     link,
		ShortURL: shortURL,
	})
}

// GetLink handles GET /api/links/{code}
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/api/links/")
	if code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	link, err := h.links.GetLink(r.Context(), code)
	if err != nil {
		log.Printf("[ERROR] Failed to get link for code '%s': %v", code, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, link)
}

// DeleteLink handles DELETE /api/links/{code}
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/api/links/")
	if code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	deleted, err := h.links.DeleteLink(r.Context(), code)
	if err != nil {
		log.Printf("[ERROR] Failed to delete link with code '%s': %v", code, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.DeleteLinkResponse{
		OK:      true,
		Deleted: deleted,
	})
}

// ListLinks handles GET /api/links
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.ListLinks(r.Context())
	if err != nil {
		log.Printf("[ERROR] Failed to list links: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, links)
}

// Redirect handles GET /{code} - redirects to the destination URL
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/")
	if code == "" || strings.Contains(code, "/") {
		http.NotFound(w, r)
		return
	}

	url, err := h.links.Resolve(r.Context(), code)
	if err != nil {
		// Unknown and malformed codes look the same here.
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("[ERROR] Failed to resolve code '%s': %v", code, err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		http.NotFound(w, r)
		return
	}

	h.metrics.RedirectServed()
	http.Redirect(w, r, url, http.StatusFound)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// LinksHandler handles both POST /api/links and GET /api/links
func (h *Handler) LinksHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateLink(w, r)
	case http.MethodGet:
		h.ListLinks(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// LinkDetailHandler handles GET /api/links/{code} and DELETE /api/links/{code}
func (h *Handler) LinkDetailHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetLink(w, r)
	case http.MethodDelete:
		h.DeleteLink(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// writeServiceError maps the domain error taxonomy to HTTP status codes.
// Anything outside the taxonomy is an opaque server error.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidURL), errors.Is(err, domain.ErrInvalidCode):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCodeConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, domain.ErrorResponse{OK: false, Error: message})
}
