package controllers

import (
	"net/http"
	"strings"

	"receipttrack-backend/config"
	"receipttrack-backend/models"
	"receipttrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// ViewCustomers lists customers with search, sorting and pagination.
func ViewCustomers(c *gin.Context) {
	page := queryInt(c, "page", 1)
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort_by", "name_asc")

	query := config.DB.Model(&models.Customer{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Flash(c, "danger", "Failed to load customers.")
		render(c, http.StatusOK, "view_customers.html", gin.H{
			"Title": "Customers", "Search": search, "SortBy": sortBy,
		})
		return
	}

	switch sortBy {
	case "name_desc":
		query = query.Order("name DESC")
	case "id_asc":
		query = query.Order("id ASC")
	case "id_desc":
		query = query.Order("id DESC")
	default:
		query = query.Order("name ASC")
	}

	var customers []models.Customer
	if err := query.Scopes(utils.Paginate(page)).Find(&customers).Error; err != nil {
		utils.Flash(c, "danger", "Failed to load customers.")
		render(c, http.StatusOK, "view_customers.html", gin.H{
			"Title": "Customers", "Search": search, "SortBy": sortBy,
		})
		return
	}

	render(c, http.StatusOK, "view_customers.html", gin.H{
		"Title":      "Customers",
		"Customers":  customers,
		"Pagination": utils.NewPagination(page, total),
		"Search":     search,
		"SortBy":     sortBy,
	})
}
