package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// flashCookieName carries one-time notices across a redirect.
const flashCookieName = "nba_flash"

// SetFlash stores a one-time notice shown on the next rendered page.
// gin URL-encodes cookie values, so accented messages survive the trip.
func SetFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// TakeFlash returns the pending notice, if any, and clears it.
func TakeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}
