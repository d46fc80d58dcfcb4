package entity

import "github.com/shopspring/decimal"

const InvoiceStatusPaid = "PAID"

// Invoice is a billing record scoped to a patient. Read-only for the portal.
type Invoice struct {
	ID     OpaqueID        `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

func (i Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}
