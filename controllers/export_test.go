package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"receipttrack-backend/config"
	"receipttrack-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptDocRoundTrip(t *testing.T) {
	r := setupServer(t)
	session := registerAndLogin(t, r)

	addReceipt(t, r, session, "Jane Doe", "", "100.00", "0.00", "2024-01-15")

	var receipt models.Receipt
	require.NoError(t, config.DB.First(&receipt).Error)

	w := do(r, http.MethodGet, fmt.Sprintf("/generate_receipt_doc/%d", receipt.ID), nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "receipt_R001.txt")

	body := w.Body.String()
	assert.Contains(t, body, "Receipt Number: R001")
	assert.Contains(t, body, "Date: 2024-01-15")
	assert.Contains(t, body, "Customer Name: Jane Doe")
	assert.Contains(t, body, "Phone: N/A")
	assert.Contains(t, body, "Amount Paid: $100.00")
	assert.Contains(t, body, "Balance: $0.00")
}

func TestReceiptPDFDownload(t *testing.T) {
	r := setupServer(t)
	session := registerAndLogin(t, r)

	addReceipt(t, r, session, "Jane Doe", "0700111222", "100.00", "0.00", "2024-01-15")

	var receipt models.Receipt
	require.NoError(t, config.DB.First(&receipt).Error)

	w := do(r, http.MethodGet, fmt.Sprintf("/generate_receipt_pdf/%d", receipt.ID), nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "receipt_R001.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "response must be a PDF document")
}

func TestExportMissingReceiptIs404(t *testing.T) {
	r := setupServer(t)
	session := registerAndLogin(t, r)

	for _, path := range []string{"/generate_receipt_pdf/424242", "/generate_receipt_doc/424242"} {
		w := do(r, http.MethodGet, path, nil, session)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
