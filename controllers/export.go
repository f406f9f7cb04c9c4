package controllers

import (
	"fmt"
	"net/http"

	"receipttrack-backend/config"
	"receipttrack-backend/models"
	"receipttrack-backend/services"

	"github.com/gin-gonic/gin"
)

var exporter = services.NewExportService()

func loadReceiptWithCustomer(c *gin.Context) (*models.Receipt, *models.Customer, bool) {
	var receipt models.Receipt
	if err := config.DB.First(&receipt, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c)
		return nil, nil, false
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", receipt.CustomerID).Error; err != nil {
		notFound(c)
		return nil, nil, false
	}

	return &receipt, &customer, true
}

func GenerateReceiptPDF(c *gin.Context) {
	receipt, customer, ok := loadReceiptWithCustomer(c)
	if !ok {
		return
	}

	document, err := exporter.ReceiptPDF(receipt, customer)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="receipt_%s.pdf"`, receipt.ReceiptNumber))
	c.Data(http.StatusOK, "application/pdf", document)
}

func GenerateReceiptDoc(c *gin.Context) {
	receipt, customer, ok := loadReceiptWithCustomer(c)
	if !ok {
		return
	}

	document := exporter.ReceiptText(receipt, customer)

	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="receipt_%s.txt"`, receipt.ReceiptNumber))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", document)
}
