package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"receipttrack-backend/config"
	"receipttrack-backend/models"
	"receipttrack-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessRoutesRedirectToLogin(t *testing.T) {
	r := setupServer(t)

	paths := []string{
		"/",
		"/view_payments",
		"/view_customers",
		"/view_appointments",
		"/add_receipt",
		"/view_receipt/1",
		"/edit_receipt/1",
		"/generate_receipt_pdf/1",
		"/generate_receipt_doc/1",
	}
	for _, path := range paths {
		w := do(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestAuthenticatedUserSkipsAuthPages(t *testing.T) {
	r := setupServer(t)
	session := registerAndLogin(t, r)

	for _, path := range []string{"/login", "/register"} {
		w := do(r, http.MethodGet, path, nil, session)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupServer(t)

	w := do(r, http.MethodPost, "/register", url.Values{
		"username": {"alice"},
		"password": {"s3cret-pass"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	var user models.User
	require.NoError(t, config.DB.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")

	w = do(r, http.MethodPost, "/login", url.Values{
		"username": {"alice"},
		"password": {"s3cret-pass"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := setupServer(t)

	form := url.Values{"username": {"alice"}, "password": {"s3cret-pass"}}
	w := do(r, http.MethodPost, "/register", form)
	require.Equal(t, http.StatusFound, w.Code)

	w = do(r, http.MethodPost, "/register", form)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/register", w.Header().Get("Location"))

	var count int64
	config.DB.Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count, "duplicate registration must not create a row")
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := setupServer(t)

	user := models.User{Username: "alice", Password: "s3cret-pass"}
	require.NoError(t, config.DB.Create(&user).Error)

	w := do(r, http.MethodPost, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookie {
			t.Fatalf("session cookie must not be set on failed login")
		}
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := setupServer(t)
	session := registerAndLogin(t, r)

	w := do(r, http.MethodGet, "/logout", nil, session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookie && cookie.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must clear the session cookie")
}
