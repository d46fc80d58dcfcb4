package repository

import (
	"context"

	"healthcare-admin-portal/internal/domain/entity"
)

type InvoiceRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]entity.Invoice, error)
}
