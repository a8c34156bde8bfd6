package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/FahadIshaq/scanback/internal/activation"
)

// TemplateRenderer renders a named page template.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler holds dependencies for the HTML page handlers.
type Handler struct {
	client  activation.Client
	tracker activation.Tracker
	tmpl    TemplateRenderer
}

// New creates a new Handler with the given dependencies. tracker may be nil,
// in which case the controller falls back to detached-goroutine tracking.
func New(client activation.Client, tracker activation.Tracker, tmpl TemplateRenderer) (*Handler, error) {
	if client == nil {
		return nil, errors.New("backend client is required")
	}
	if tmpl == nil {
		return nil, errors.New("templates are required")
	}
	return &Handler{
		client:  client,
		tracker: tracker,
		tmpl:    tmpl,
	}, nil
}

// RegisterRoutes registers all HTML routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /scan/{code}", h.ScanPage)
	mux.HandleFunc("POST /scan/{code}", h.ScanSubmit)
}

// newController builds a per-request view controller.
func (h *Handler) newController() (*activation.Controller, error) {
	if h.tracker != nil {
		return activation.New(h.client, activation.WithTracker(h.tracker))
	}
	return activation.New(h.client)
}
