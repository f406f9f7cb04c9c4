package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"receipttrack-backend/config"
	"receipttrack-backend/models"
	"receipttrack-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

func Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		utils.Flash(c, "danger", "Username and password are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	// Check if the username is already taken (exact, case-sensitive match)
	var existing models.User
	result := config.DB.Where("username = ?", username).First(&existing)

	if result.Error == nil {
		utils.Flash(c, "danger", "Username already exists. Please choose a different one.")
		c.Redirect(http.StatusFound, "/register")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.Flash(c, "danger", "Database error.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	newUser := models.User{
		Username: username,
		Password: password, // Will be hashed in BeforeCreate hook
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.Flash(c, "danger", "Failed to create account.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	utils.Flash(c, "success", "Registration successful! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

func Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)

	// Keep the failure message generic either way
	if result.Error != nil || !utils.CheckPasswordHash(password, user.Password) {
		utils.Flash(c, "danger", "Login failed. Check your username and password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.Flash(c, "danger", "Failed to establish session.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	utils.SetSessionCookie(c, token)
	utils.Flash(c, "success", "Logged in successfully!")
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	utils.Flash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}
