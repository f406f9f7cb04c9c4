// services/export.go
package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"receipttrack-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// ExportService renders a single receipt as a printable document.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func receiptLines(receipt *models.Receipt, customer *models.Customer) []string {
	phone := customer.Phone
	if phone == "" {
		phone = "N/A"
	}
	return []string{
		fmt.Sprintf("Receipt Number: %s", receipt.ReceiptNumber),
		fmt.Sprintf("Date: %s", receipt.ReceiptDate.Format("2006-01-02")),
		fmt.Sprintf("Customer Name: %s", customer.Name),
		fmt.Sprintf("Phone: %s", phone),
		fmt.Sprintf("Amount Paid: $%.2f", receipt.AmountPaid),
		fmt.Sprintf("Balance: $%.2f", receipt.Balance),
	}
}

// ReceiptPDF renders the receipt on a single letter page, one labelled
// line per field.
func (s *ExportService) ReceiptPDF(receipt *models.Receipt, customer *models.Customer) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	y := 50.0
	for _, line := range receiptLines(receipt, customer) {
		pdf.Text(100, y, line)
		y += 20
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReceiptText renders the same fields as a flat UTF-8 document.
func (s *ExportService) ReceiptText(receipt *models.Receipt, customer *models.Customer) []byte {
	var b strings.Builder
	b.WriteString("RECEIPT\n\n")
	for _, line := range receiptLines(receipt, customer) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\nGenerated on: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	return []byte(b.String())
}
