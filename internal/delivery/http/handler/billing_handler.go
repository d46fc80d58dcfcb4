package handler

import (
	"net/http"

	"healthcare-admin-portal/internal/converter"
	"healthcare-admin-portal/internal/delivery/dto"
	"healthcare-admin-portal/internal/delivery/http/view"
	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/internal/usecase"
)

const billingTitle = "Billing"

type BillingHandler struct {
	billingUsecase   usecase.BillingUsecase
	invoiceConverter *converter.InvoiceConverter
	renderer         *view.Renderer
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, invoiceConverter *converter.InvoiceConverter, renderer *view.Renderer) *BillingHandler {
	return &BillingHandler{
		billingUsecase:   billingUsecase,
		invoiceConverter: invoiceConverter,
		renderer:         renderer,
	}
}

func (h *BillingHandler) Show(w http.ResponseWriter, r *http.Request) {
	state := h.billingUsecase.Open(r.Context())
	h.render(w, http.StatusOK, state)
}

func (h *BillingHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var form dto.BillingForm
	if err := decodeForm(r, &form); err != nil {
		h.render(w, http.StatusBadRequest, &entity.BillingState{Phase: entity.PhaseErrored, Error: msgInvalidForm})
		return
	}

	state, err := h.billingUsecase.Lookup(r.Context(), form.PatientID)
	h.render(w, statusFor(err), state)
}

func (h *BillingHandler) render(w http.ResponseWriter, status int, state *entity.BillingState) {
	h.renderer.Page(w, status, view.PageBilling, billingTitle, h.invoiceConverter.BillingStateToPage(state))
}
