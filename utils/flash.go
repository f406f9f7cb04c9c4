package utils

import (
	"github.com/gin-gonic/gin"
)

const (
	flashCookie     = "flash"
	flashTypeCookie = "flash_type"
)

// Flash queues a one-shot message for the next rendered page.
// Levels follow the usual bootstrap names: success, danger, info.
func Flash(c *gin.Context, level, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
	c.SetCookie(flashTypeCookie, level, 60, "/", "", false, true)
}

// TakeFlash returns the pending message, if any, and clears it.
func TakeFlash(c *gin.Context) (message, level string) {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return "", ""
	}
	level, _ = c.Cookie(flashTypeCookie)
	if level == "" {
		level = "info"
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	c.SetCookie(flashTypeCookie, "", -1, "/", "", false, true)
	return message, level
}
