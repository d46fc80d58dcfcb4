package dto

type BillingForm struct {
	PatientID string `schema:"patientId"`
}

type InvoiceRow struct {
	ID     string
	Amount string
	Status string
	Paid   bool
}

type BillingPage struct {
	PatientID string
	View      string
	Invoices  []InvoiceRow
	Error     string
}
