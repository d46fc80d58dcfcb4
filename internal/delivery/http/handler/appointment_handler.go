package handler

import (
	"net/http"

	"healthcare-admin-portal/internal/converter"
	"healthcare-admin-portal/internal/delivery/dto"
	"healthcare-admin-portal/internal/delivery/http/view"
	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/internal/usecase"
	"healthcare-admin-portal/pkg/validator"
)

const appointmentsTitle = "Appointments"

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	renderer           *view.Renderer
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, renderer *view.Renderer) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		renderer:           renderer,
	}
}

func (h *AppointmentHandler) Show(w http.ResponseWriter, r *http.Request) {
	state, err := h.appointmentUsecase.Open(r.Context(), r.URL.Query().Get("doctorId"))
	h.render(w, statusFor(err), state)
}

func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var form dto.AppointmentForm
	if err := decodeForm(r, &form); err != nil {
		state, _ := h.appointmentUsecase.Reject(r.Context(), entity.NewAppointmentDraft(), nil)
		state.Form.Error = msgInvalidForm
		h.render(w, http.StatusBadRequest, state)
		return
	}
	form.Normalize()
	draft := converter.AppointmentFormToDraft(form)

	if err := h.validator.Validate(&form); err != nil {
		state, err := h.appointmentUsecase.Reject(r.Context(), draft, h.validator.FormatValidationErrors(err))
		h.render(w, statusFor(err), state)
		return
	}

	state, err := h.appointmentUsecase.Book(r.Context(), draft)
	h.render(w, statusFor(err), state)
}

func (h *AppointmentHandler) render(w http.ResponseWriter, status int, state *entity.AppointmentsPageState) {
	h.renderer.Page(w, status, view.PageAppointments, appointmentsTitle, converter.AppointmentsStateToPage(state))
}
