package handler

import (
	"net/http"

	"healthcare-admin-portal/internal/delivery/http/view"
)

type NotFoundHandler struct {
	renderer *view.Renderer
}

func NewNotFoundHandler(renderer *view.Renderer) *NotFoundHandler {
	return &NotFoundHandler{renderer: renderer}
}

func (h *NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, http.StatusNotFound, view.PageNotFound, "Page not found", nil)
}

type HomeHandler struct {
	renderer *view.Renderer
}

func NewHomeHandler(renderer *view.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

func (h *HomeHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, http.StatusOK, view.PageHome, "Home", nil)
}

// MethodNotAllowed renders the not-found page for a known path hit with the
// wrong method.
func (h *NotFoundHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, http.StatusMethodNotAllowed, view.PageNotFound, "Method not allowed", "This page does not accept "+r.Method+" requests.")
}
