package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/interfaces/http/middleware"
)

// BaseHandler provides shared rendering helpers for page handlers.
type BaseHandler struct{}

// Render draws an HTML template, injecting the session username and any
// pending flash notice into the page data.
func (h *BaseHandler) Render(c *gin.Context, status int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Username"]; !ok {
		data["Username"] = middleware.CurrentUsername(c)
	}
	if _, ok := data["Flash"]; !ok {
		if flash := middleware.TakeFlash(c); flash != "" {
			data["Flash"] = flash
		}
	}
	c.HTML(status, template, data)
}

// RedirectWithFlash sets a one-time notice and redirects to the target path.
func (h *BaseHandler) RedirectWithFlash(c *gin.Context, target, message string) {
	middleware.SetFlash(c, message)
	c.Redirect(http.StatusFound, target)
}
