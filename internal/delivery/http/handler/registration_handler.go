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

const registerTitle = "Register"

type RegistrationHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	validator           *validator.CustomValidator
	renderer            *view.Renderer
}

func NewRegistrationHandler(registrationUsecase usecase.RegistrationUsecase, validator *validator.CustomValidator, renderer *view.Renderer) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
		validator:           validator,
		renderer:            renderer,
	}
}

func (h *RegistrationHandler) Show(w http.ResponseWriter, r *http.Request) {
	state := h.registrationUsecase.Open(r.Context())
	h.render(w, http.StatusOK, state)
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form dto.RegistrationForm
	if err := decodeForm(r, &form); err != nil {
		h.render(w, http.StatusBadRequest, &entity.RegistrationState{Phase: entity.PhaseIdle, Error: msgInvalidForm})
		return
	}
	form.Normalize()
	draft := converter.RegistrationFormToDraft(form)

	if err := h.validator.Validate(&form); err != nil {
		state, err := h.registrationUsecase.Reject(r.Context(), draft, h.validator.FormatValidationErrors(err))
		h.render(w, statusFor(err), state)
		return
	}

	state, err := h.registrationUsecase.Register(r.Context(), draft)
	h.render(w, statusFor(err), state)
}

// CompleteDoctorProfile retries the doctor profile of a partial registration.
func (h *RegistrationHandler) CompleteDoctorProfile(w http.ResponseWriter, r *http.Request) {
	state, err := h.registrationUsecase.CompleteDoctorProfile(r.Context())
	h.render(w, statusFor(err), state)
}

func (h *RegistrationHandler) render(w http.ResponseWriter, status int, state *entity.RegistrationState) {
	h.renderer.Page(w, status, view.PageRegister, registerTitle, converter.RegistrationStateToPage(state))
}
