package routes

import (
	"fmt"
	"html/template"
	"time"

	"receipttrack-backend/config"
	"receipttrack-backend/controllers"
	"receipttrack-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	return SetupRouterWithTemplates("templates/*.html")
}

// SetupRouterWithTemplates exists so tests can point at the template
// directory from their own working directory.
func SetupRouterWithTemplates(pattern string) *gin.Engine {
	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"formatCurrency": func(amount float64) string {
			return fmt.Sprintf("$%.2f", amount)
		},
	})
	r.LoadHTMLGlob(pattern)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/register", utils.RedirectIfAuthenticated(), controllers.ShowRegister)
	r.POST("/register", utils.RedirectIfAuthenticated(), controllers.Register)
	r.GET("/login", utils.RedirectIfAuthenticated(), controllers.ShowLogin)
	r.POST("/login", utils.RedirectIfAuthenticated(), controllers.Login)

	app := r.Group("/")
	app.Use(utils.AuthMiddleware())
	{
		app.GET("", controllers.Dashboard)
		app.GET("logout", controllers.Logout)

		app.GET("view_payments", controllers.ViewPayments)
		app.GET("view_customers", controllers.ViewCustomers)
		app.GET("view_appointments", controllers.ViewAppointments)

		app.GET("add_receipt", controllers.ShowAddReceipt)
		app.POST("add_receipt", controllers.AddReceipt)
		app.GET("view_receipt/:id", controllers.ViewReceipt)
		app.GET("edit_receipt/:id", controllers.ShowEditReceipt)
		app.POST("edit_receipt/:id", controllers.EditReceipt)
		app.DELETE("delete_receipt/:id", controllers.DeleteReceipt)

		app.GET("add_appointment", controllers.ShowAddAppointment)
		app.POST("add_appointment", controllers.AddAppointment)

		app.GET("generate_receipt_pdf/:id", controllers.GenerateReceiptPDF)
		app.GET("generate_receipt_doc/:id", controllers.GenerateReceiptDoc)
	}

	return r
}
