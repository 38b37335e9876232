package handler

import (
	"net/http"
)

// Handler serves the pre-rendered shell page.
type Handler struct {
	index []byte
}

// New creates a Handler that answers GET / with index.
// index is not copied and must not be modified afterwards.
func New(index []byte) *Handler {
	return &Handler{
		index: index,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Exact root only; everything else falls through to the mux's 404/405.
	mux.HandleFunc("GET /{$}", h.handleIndex)
}

// handleIndex writes the shell page.
func (h *Handler) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.index)
}
