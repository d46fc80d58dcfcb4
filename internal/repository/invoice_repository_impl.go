package repository

import (
	"context"
	"net/http"

	"healthcare-admin-portal/internal/domain/entity"
	domainRepo "healthcare-admin-portal/internal/domain/repository"
	"healthcare-admin-portal/internal/infrastructure/gateway"
)

type invoiceRepository struct {
	client *gateway.Client
}

func NewInvoiceRepository(client *gateway.Client) domainRepo.InvoiceRepository {
	return &invoiceRepository{client: client}
}

func (r *invoiceRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	path := "/api/billing/patient/" + gateway.PathSegment(patientID)
	if err := r.client.Do(ctx, gateway.OpListInvoicesByPatient, http.MethodGet, path, nil, &invoices); err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []entity.Invoice{}
	}
	return invoices, nil
}
