package controllers

import (
	"net/http"
	"strconv"

	"receipttrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// render injects any pending flash message before handing off to the template.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if message, level := utils.TakeFlash(c); message != "" {
		data["Flash"] = message
		data["FlashType"] = level
	}
	c.HTML(status, name, data)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
