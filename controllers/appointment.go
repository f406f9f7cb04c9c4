package controllers

import (
	"net/http"
	"strings"

	"receipttrack-backend/config"
	"receipttrack-backend/models"
	"receipttrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// ViewAppointments lists appointments with search, date bounds, sorting
// and pagination. date_to covers the whole day since appointments carry
// a time component.
func ViewAppointments(c *gin.Context) {
	page := queryInt(c, "page", 1)
	search := c.Query("search")
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")
	sortBy := c.DefaultQuery("sort_by", "date_asc")

	query := config.DB.Model(&models.Appointment{}).
		Joins("JOIN customers ON customers.id = appointments.customer_id")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(customers.name) LIKE ? OR LOWER(customers.phone) LIKE ? OR LOWER(appointments.description) LIKE ?",
			pattern, pattern, pattern)
	}

	if from, ok := utils.ParseDate(dateFrom); ok {
		query = query.Where("appointments.appointment_date >= ?", from)
	}
	if to, ok := utils.ParseDate(dateTo); ok {
		query = query.Where("appointments.appointment_date < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Flash(c, "danger", "Failed to load appointments.")
		render(c, http.StatusOK, "view_appointments.html", gin.H{
			"Title": "Appointments", "Search": search, "DateFrom": dateFrom,
			"DateTo": dateTo, "SortBy": sortBy,
		})
		return
	}

	switch sortBy {
	case "date_desc":
		query = query.Order("appointments.appointment_date DESC")
	case "customer_asc":
		query = query.Order("customers.name ASC")
	case "customer_desc":
		query = query.Order("customers.name DESC")
	default:
		query = query.Order("appointments.appointment_date ASC")
	}

	var appointments []models.Appointment
	if err := query.Select("appointments.*").Preload("Customer").
		Scopes(utils.Paginate(page)).
		Find(&appointments).Error; err != nil {
		utils.Flash(c, "danger", "Failed to load appointments.")
		render(c, http.StatusOK, "view_appointments.html", gin.H{
			"Title": "Appointments", "Search": search, "DateFrom": dateFrom,
			"DateTo": dateTo, "SortBy": sortBy,
		})
		return
	}

	render(c, http.StatusOK, "view_appointments.html", gin.H{
		"Title":        "Appointments",
		"Appointments": appointments,
		"Pagination":   utils.NewPagination(page, total),
		"Search":       search,
		"DateFrom":     dateFrom,
		"DateTo":       dateTo,
		"SortBy":       sortBy,
	})
}

func ShowAddAppointment(c *gin.Context) {
	render(c, http.StatusOK, "add_appointment.html", gin.H{"Title": "Add Appointment"})
}

func AddAppointment(c *gin.Context) {
	customerName := strings.TrimSpace(c.PostForm("customer_name"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	description := strings.TrimSpace(c.PostForm("description"))
	appointmentDate, dateOK := utils.ParseDateTime(c.PostForm("appointment_date"))

	if customerName == "" || !dateOK {
		utils.Flash(c, "danger", "Customer name and appointment date are required.")
		c.Redirect(http.StatusFound, "/add_appointment")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	customer, err := upsertCustomerByName(tx, customerName, phone)
	if err != nil {
		tx.Rollback()
		utils.Flash(c, "danger", "Failed to save customer.")
		c.Redirect(http.StatusFound, "/add_appointment")
		return
	}

	appointment := models.Appointment{
		CustomerID:      customer.ID,
		AppointmentDate: appointmentDate,
		Description:     description,
	}
	if err := tx.Create(&appointment).Error; err != nil {
		tx.Rollback()
		utils.Flash(c, "danger", "Failed to save appointment.")
		c.Redirect(http.StatusFound, "/add_appointment")
		return
	}

	tx.Commit()

	utils.Flash(c, "success", "Appointment added successfully!")
	c.Redirect(http.StatusFound, "/view_appointments")
}
