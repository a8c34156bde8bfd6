package handler

import (
	"bytes"
	"log/slog"
	"net/http"
)

// HomeData holds data for the landing page template.
type HomeData struct {
	TagTypes []string
}

// Home handles the landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := HomeData{
		TagTypes: []string{"item", "pet", "emergency"},
	}

	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, "home.html", data); err != nil {
		slog.Error("failed to render home template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}
