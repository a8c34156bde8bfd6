package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/FahadIshaq/scanback/internal/activation"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	client     activation.Client
	tracker    activation.Tracker
	bufferPool *sync.Pool // Pool of bytes.Buffer for JSON encoding
}

// New creates a new API Handler. tracker may be nil (scan pings are then
// forwarded synchronously on a best-effort basis).
func New(client activation.Client, tracker activation.Tracker) (*Handler, error) {
	if client == nil {
		return nil, errors.New("backend client is required")
	}
	return &Handler{
		client:  client,
		tracker: tracker,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/tags/{code}", h.GetTag)
	mux.HandleFunc("POST /api/v1/tags/{code}/activate", h.ActivateTag)
	mux.HandleFunc("POST /api/v1/tags/{code}/scans", h.TrackScan)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}

// validateCode validates the tag code path parameter and writes an error
// response if it is unusable.
func (h *Handler) validateCode(w http.ResponseWriter, r *http.Request) (string, bool) {
	code := r.PathValue("code")
	if code == "" {
		h.writeError(w, http.StatusBadRequest, "tag code is required")
		return "", false
	}
	if len(code) > 64 {
		h.writeError(w, http.StatusBadRequest, "invalid tag code")
		return "", false
	}
	return code, true
}
