package handler

import (
	"net/http"

	"healthcare-admin-portal/internal/converter"
	"healthcare-admin-portal/internal/delivery/http/view"
	"healthcare-admin-portal/internal/usecase"
)

const doctorsTitle = "Doctors"

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	renderer         *view.Renderer
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, renderer *view.Renderer) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		renderer:         renderer,
	}
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	state, err := h.directoryUsecase.Open(r.Context())
	h.renderer.Page(w, statusFor(err), view.PageDoctors, doctorsTitle, converter.DoctorDirectoryToPage(state, ""))
}

// Filter serves the list fragment to the page script and the full page to
// browsers without JavaScript.
func (h *DoctorHandler) Filter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	state, err := h.directoryUsecase.Filter(r.Context(), query)
	page := converter.DoctorDirectoryToPage(state, query)

	if isFragmentRequest(r) {
		h.renderer.Fragment(w, statusFor(err), view.PageDoctors, "doctor-list", page)
		return
	}
	h.renderer.Page(w, statusFor(err), view.PageDoctors, doctorsTitle, page)
}
