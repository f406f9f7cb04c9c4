// controllers/receipt.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"receipttrack-backend/config"
	"receipttrack-backend/models"
	"receipttrack-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// nextReceiptNumber derives the next sequential number from the most
// recently created receipt. The numeric suffix keeps growing past 999
// (R999 -> R1000) without truncation.
func nextReceiptNumber(db *gorm.DB) (string, error) {
	var last models.Receipt
	err := db.Order("id DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "R001", nil
	}
	if err != nil {
		return "", err
	}

	lastNum, err := strconv.Atoi(strings.TrimPrefix(last.ReceiptNumber, "R"))
	if err != nil {
		return "", fmt.Errorf("malformed receipt number %q", last.ReceiptNumber)
	}
	return fmt.Sprintf("R%03d", lastNum+1), nil
}

// upsertCustomerByName finds a customer by exact name or creates one.
// Runs inside the caller's transaction so the receipt insert sees it.
func upsertCustomerByName(db *gorm.DB, name, phone string) (models.Customer, error) {
	var customer models.Customer
	err := db.Where("name = ?", name).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = models.Customer{Name: name, Phone: phone}
		if err := db.Create(&customer).Error; err != nil {
			return models.Customer{}, err
		}
		return customer, nil
	}
	return customer, err
}

func ShowAddReceipt(c *gin.Context) {
	suggested, err := nextReceiptNumber(config.DB)
	if err != nil {
		suggested = ""
	}
	render(c, http.StatusOK, "add_receipt.html", gin.H{
		"Title":                  "Add Receipt",
		"SuggestedReceiptNumber": suggested,
	})
}

func AddReceipt(c *gin.Context) {
	customerName := strings.TrimSpace(c.PostForm("customer_name"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	amountPaid, amountErr := strconv.ParseFloat(c.PostForm("amount_paid"), 64)
	balance, balanceErr := strconv.ParseFloat(c.PostForm("balance"), 64)
	receiptDate, dateOK := utils.ParseDate(c.PostForm("receipt_date"))

	if customerName == "" || amountErr != nil || balanceErr != nil || !dateOK ||
		amountPaid < 0 || balance < 0 {
		utils.Flash(c, "danger", "Invalid receipt details.")
		c.Redirect(http.StatusFound, "/add_receipt")
		return
	}

	// Number assignment, customer upsert and receipt insert are one
	// transaction; the unique index on receipt_number turns a numbering
	// race into a loud failure instead of a silent duplicate.
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	receiptNumber, err := nextReceiptNumber(tx)
	if err != nil {
		tx.Rollback()
		utils.Flash(c, "danger", "Failed to assign a receipt number.")
		c.Redirect(http.StatusFound, "/add_receipt")
		return
	}

	customer, err := upsertCustomerByName(tx, customerName, phone)
	if err != nil {
		tx.Rollback()
		utils.Flash(c, "danger", "Failed to save customer.")
		c.Redirect(http.StatusFound, "/add_receipt")
		return
	}

	receipt := models.Receipt{
		ReceiptNumber: receiptNumber,
		CustomerID:    customer.ID,
		AmountPaid:    amountPaid,
		Balance:       balance,
		ReceiptDate:   receiptDate,
	}
	if err := tx.Create(&receipt).Error; err != nil {
		tx.Rollback()
		utils.Flash(c, "danger", "Failed to save receipt.")
		c.Redirect(http.StatusFound, "/add_receipt")
		return
	}

	tx.Commit()

	utils.Flash(c, "success", "Receipt added successfully!")
	c.Redirect(http.StatusFound, "/")
}

// ViewPayments lists receipts with search, amount/date filters, sorting
// and fixed-size pagination. Malformed filter values are skipped.
func ViewPayments(c *gin.Context) {
	page := queryInt(c, "page", 1)
	search := c.Query("search")
	amountFilter := c.Query("amount_filter")
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")
	sortBy := c.DefaultQuery("sort_by", "date_desc")

	query := config.DB.Model(&models.Receipt{}).
		Joins("JOIN customers ON customers.id = receipts.customer_id")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(receipts.receipt_number) LIKE ? OR LOWER(customers.name) LIKE ? OR LOWER(customers.phone) LIKE ?",
			pattern, pattern, pattern)
	}

	switch amountFilter {
	case "paid":
		query = query.Where("receipts.amount_paid > 0")
	case "balance":
		query = query.Where("receipts.balance > 0")
	}

	if from, ok := utils.ParseDate(dateFrom); ok {
		query = query.Where("receipts.receipt_date >= ?", from)
	}
	if to, ok := utils.ParseDate(dateTo); ok {
		query = query.Where("receipts.receipt_date <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Flash(c, "danger", "Failed to load payments.")
		render(c, http.StatusOK, "view_payments.html", gin.H{
			"Title": "Payments", "Search": search, "AmountFilter": amountFilter,
			"DateFrom": dateFrom, "DateTo": dateTo, "SortBy": sortBy,
		})
		return
	}

	switch sortBy {
	case "date_asc":
		query = query.Order("receipts.receipt_date ASC")
	case "amount_desc":
		query = query.Order("receipts.amount_paid DESC")
	case "amount_asc":
		query = query.Order("receipts.amount_paid ASC")
	default:
		query = query.Order("receipts.receipt_date DESC")
	}

	var receipts []models.Receipt
	if err := query.Select("receipts.*").Preload("Customer").
		Scopes(utils.Paginate(page)).
		Find(&receipts).Error; err != nil {
		utils.Flash(c, "danger", "Failed to load payments.")
		render(c, http.StatusOK, "view_payments.html", gin.H{
			"Title": "Payments", "Search": search, "AmountFilter": amountFilter,
			"DateFrom": dateFrom, "DateTo": dateTo, "SortBy": sortBy,
		})
		return
	}

	render(c, http.StatusOK, "view_payments.html", gin.H{
		"Title":        "Payments",
		"Receipts":     receipts,
		"Pagination":   utils.NewPagination(page, total),
		"Search":       search,
		"AmountFilter": amountFilter,
		"DateFrom":     dateFrom,
		"DateTo":       dateTo,
		"SortBy":       sortBy,
	})
}

func ViewReceipt(c *gin.Context) {
	var receipt models.Receipt
	if err := config.DB.Preload("Customer").
		First(&receipt, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c)
		return
	}

	render(c, http.StatusOK, "view_receipt.html", gin.H{
		"Title":   "Receipt " + receipt.ReceiptNumber,
		"Receipt": receipt,
	})
}

func ShowEditReceipt(c *gin.Context) {
	var receipt models.Receipt
	if err := config.DB.Preload("Customer").
		First(&receipt, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c)
		return
	}

	render(c, http.StatusOK, "edit_receipt.html", gin.H{
		"Title":   "Edit Receipt",
		"Receipt": receipt,
	})
}

func EditReceipt(c *gin.Context) {
	var receipt models.Receipt
	if err := config.DB.First(&receipt, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c)
		return
	}

	amountPaid, amountErr := strconv.ParseFloat(c.PostForm("amount_paid"), 64)
	balance, balanceErr := strconv.ParseFloat(c.PostForm("balance"), 64)
	receiptDate, dateOK := utils.ParseDate(c.PostForm("receipt_date"))

	if amountErr != nil || balanceErr != nil || !dateOK || amountPaid < 0 || balance < 0 {
		utils.Flash(c, "danger", "Invalid receipt details.")
		c.Redirect(http.StatusFound, "/edit_receipt/"+c.Param("id"))
		return
	}

	receipt.AmountPaid = amountPaid
	receipt.Balance = balance
	receipt.ReceiptDate = receiptDate

	if err := config.DB.Save(&receipt).Error; err != nil {
		utils.Flash(c, "danger", "Failed to update receipt.")
		c.Redirect(http.StatusFound, "/edit_receipt/"+c.Param("id"))
		return
	}

	utils.Flash(c, "success", "Receipt updated successfully!")
	c.Redirect(http.StatusFound, "/view_payments")
}

// DeleteReceipt answers JSON for the listing page's delete button. Any
// failure, including an unknown id, is a payload rather than an error page.
func DeleteReceipt(c *gin.Context) {
	var receipt models.Receipt
	if err := config.DB.First(&receipt, "id = ?", c.Param("id")).Error; err != nil {
		message := "Receipt not found"
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			message = err.Error()
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
		return
	}

	if err := config.DB.Delete(&receipt).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
