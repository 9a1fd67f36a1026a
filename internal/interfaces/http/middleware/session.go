package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/auth"
)

const (
	// ContextUserIDKey holds the authenticated user's ID in the gin context.
	ContextUserIDKey = "user_id"
	// ContextUsernameKey holds the authenticated user's name in the gin context.
	ContextUsernameKey = "username"
)

// Authenticate reads the session cookie and, when valid, stores the user's
// identity in the request context. Invalid or missing sessions are not an
// error here: the request simply proceeds anonymously.
func Authenticate(sessions *auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessions.ReadCookie(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			// Stale or tampered cookie; drop it so the browser stops sending it.
			sessions.ClearCookie(c)
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// RequireAuth blocks anonymous requests: it sets a flash notice and redirects
// to the login page. Must run after Authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserIDKey); !ok {
			SetFlash(c, "Vous devez vous connecter pour accéder à cette page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated sends already-logged-in users to the players page,
// keeping the login and register forms for anonymous visitors only.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserIDKey); ok {
			c.Redirect(http.StatusFound, "/players")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUsername returns the session username, or "" for anonymous requests.
func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get(ContextUsernameKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentUserID returns the session user ID, or 0 for anonymous requests.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
