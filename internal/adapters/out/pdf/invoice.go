// Package pdf renders customer-facing documents from read models.
package pdf

import (
	"bytes"
	"fmt"

	"bistro/internal/core/application/usecases/queries"

	"github.com/phpdave11/gofpdf"
)

// InvoiceRenderer renders an order invoice as a PDF document.
type InvoiceRenderer struct{}

// NewInvoiceRenderer creates a new invoice renderer.
func NewInvoiceRenderer() InvoiceRenderer {
	return InvoiceRenderer{}
}

// Render produces the PDF bytes for one order invoice.
func (r InvoiceRenderer) Render(invoice queries.GetOrderInvoiceQueryResponse) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Delivery Invoice", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Order %s", invoice.OrderID.String()), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	r.row(doc, "Customer", invoice.CustomerName)
	r.row(doc, "Status", invoice.Status)
	if invoice.ZoneName != nil {
		r.row(doc, "Delivery zone", *invoice.ZoneName)
	}
	if invoice.CourierName != nil {
		r.row(doc, "Courier", *invoice.CourierName)
	}
	doc.Ln(4)

	r.amountRow(doc, "Order total", invoice.Total)
	r.amountRow(doc, "Delivery charge", invoice.DeliveryCharge)

	doc.SetFont("Helvetica", "B", 11)
	r.amountRow(doc, "Grand total", invoice.GrandTotal)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r InvoiceRenderer) row(doc *gofpdf.Fpdf, label, value string) {
	doc.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
	doc.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func (r InvoiceRenderer) amountRow(doc *gofpdf.Fpdf, label string, amount float64) {
	doc.CellFormat(50, 7, label, "T", 0, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("%.2f", amount), "T", 1, "R", false, 0, "")
}
