package converter

import (
	"strconv"
	"strings"

	"healthcare-admin-portal/internal/delivery/dto"
	"healthcare-admin-portal/internal/domain/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// InvoiceConverter renders invoices with grouped amounts.
type InvoiceConverter struct {
	printer        *message.Printer
	currencySymbol string
}

func NewInvoiceConverter(currencySymbol string) *InvoiceConverter {
	return &InvoiceConverter{
		printer:        message.NewPrinter(language.English),
		currencySymbol: currencySymbol,
	}
}

// FormatAmount groups digits and keeps up to three fraction digits. The
// amount never passes through a float.
func (c *InvoiceConverter) FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(3)
	integer, fraction, _ := strings.Cut(rounded.Abs().String(), ".")

	formatted := c.currencySymbol
	if rounded.IsNegative() {
		formatted += "-"
	}
	formatted += c.groupDigits(integer)
	if fraction != "" {
		formatted += "." + fraction
	}
	return formatted
}

// groupDigits inserts thousands separators into a run of decimal digits.
func (c *InvoiceConverter) groupDigits(digits string) string {
	if n, err := strconv.ParseUint(digits, 10, 64); err == nil {
		return c.printer.Sprint(number.Decimal(n))
	}

	// Beyond uint64 the printer cannot take the value; group by hand.
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func (c *InvoiceConverter) InvoiceToRow(invoice entity.Invoice) dto.InvoiceRow {
	return dto.InvoiceRow{
		ID:     invoice.ID.String(),
		Amount: c.FormatAmount(invoice.Amount),
		Status: invoice.Status,
		Paid:   invoice.IsPaid(),
	}
}

func (c *InvoiceConverter) BillingStateToPage(state *entity.BillingState) *dto.BillingPage {
	page := &dto.BillingPage{
		PatientID: state.PatientID,
		View:      string(state.View()),
		Error:     state.Error,
	}
	if state.View() == entity.BillingViewResults {
		page.Invoices = make([]dto.InvoiceRow, len(state.Invoices))
		for i, invoice := range state.Invoices {
			page.Invoices[i] = c.InvoiceToRow(invoice)
		}
	}
	return page
}
