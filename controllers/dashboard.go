package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"receipttrack-backend/config"
	"receipttrack-backend/models"
	"receipttrack-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dashboard renders the aggregate totals, the ten most recent receipts
// and the five nearest upcoming appointments. The search parameters
// narrow the receipt set feeding the totals, exactly as on the payments
// listing.
func Dashboard(c *gin.Context) {
	search := c.Query("search")
	filterType := c.Query("filter_type")
	dateFilter := c.Query("date_filter")

	receiptFilter := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&models.Receipt{}).
			Joins("JOIN customers ON customers.id = receipts.customer_id")

		if search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			switch filterType {
			case "receipt":
				q = q.Where(
					"LOWER(receipts.receipt_number) LIKE ? OR LOWER(customers.name) LIKE ?",
					pattern, pattern)
			case "customer":
				// Narrows the customer count only
			case "amount":
				if amount, err := strconv.ParseFloat(search, 64); err == nil {
					q = q.Where("receipts.amount_paid = ? OR receipts.balance = ?", amount, amount)
				}
			default:
				q = q.Where(
					"LOWER(receipts.receipt_number) LIKE ? OR LOWER(customers.name) LIKE ? OR LOWER(customers.phone) LIKE ?",
					pattern, pattern, pattern)
			}
		}

		if day, ok := utils.ParseDate(dateFilter); ok {
			q = q.Where("receipts.receipt_date = ?", day)
		}

		return q
	}

	customerFilter := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&models.Customer{})
		if search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			switch filterType {
			case "customer":
				q = q.Where("LOWER(name) LIKE ?", pattern)
			case "receipt", "amount":
				// Receipt-side filters leave the customer count alone
			default:
				q = q.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ?", pattern, pattern)
			}
		}
		return q
	}

	var totalPaid, totalBalance float64
	receiptFilter(config.DB).Select("COALESCE(SUM(receipts.amount_paid), 0)").Scan(&totalPaid)
	receiptFilter(config.DB).Select("COALESCE(SUM(receipts.balance), 0)").Scan(&totalBalance)

	var totalCustomers, totalPayments int64
	customerFilter(config.DB).Count(&totalCustomers)
	receiptFilter(config.DB).Count(&totalPayments)

	var recentPayments []models.Receipt
	receiptFilter(config.DB).Select("receipts.*").Preload("Customer").
		Order("receipts.id DESC").
		Limit(10).
		Find(&recentPayments)

	var upcomingAppointments []models.Appointment
	config.DB.Preload("Customer").
		Where("appointment_date >= ?", time.Now()).
		Order("appointment_date ASC").
		Limit(5).
		Find(&upcomingAppointments)

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":                "Dashboard",
		"TotalPaid":            totalPaid,
		"TotalBalance":         totalBalance,
		"TotalCustomers":       totalCustomers,
		"TotalPayments":        totalPayments,
		"RecentPayments":       recentPayments,
		"UpcomingAppointments": upcomingAppointments,
		"Search":               search,
		"FilterType":           filterType,
		"DateFilter":           dateFilter,
	})
}
