package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"receipttrack-backend/config"
	"receipttrack-backend/models"
	"receipttrack-backend/routes"
	"receipttrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupServer builds the real router over a fresh in-memory database.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Receipt{},
		&models.Appointment{},
		&models.ReminderLog{},
	))
	config.DB = db

	return routes.SetupRouterWithTemplates("../templates/*.html")
}

func do(r *gin.Engine, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an operator account and returns its session cookie.
func registerAndLogin(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()

	user := models.User{Username: "operator", Password: "password123"}
	require.NoError(t, config.DB.Create(&user).Error)

	w := do(r, http.MethodPost, "/login", url.Values{
		"username": {"operator"},
		"password": {"password123"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookie && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("session cookie not set after login")
	return nil
}

func addReceipt(t *testing.T, r *gin.Engine, session *http.Cookie, name, phone, amount, balance, date string) {
	t.Helper()

	w := do(r, http.MethodPost, "/add_receipt", url.Values{
		"customer_name": {name},
		"phone":         {phone},
		"amount_paid":   {amount},
		"balance":       {balance},
		"receipt_date":  {date},
	}, session)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}
