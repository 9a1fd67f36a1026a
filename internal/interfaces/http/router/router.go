package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/auth"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/interfaces/http/handler"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/interfaces/http/middleware"
)

// Handlers bundles the page handlers the router wires up.
type Handlers struct {
	Auth    *handler.AuthHandler
	Players *handler.PlayersHandler
	Teams   *handler.TeamsHandler
	Games   *handler.GamesHandler
}

// Router manages HTTP route registration.
type Router struct {
	engine   *gin.Engine
	sessions *auth.SessionService
	handlers Handlers
}

// NewRouter creates a new Router instance.
func NewRouter(engine *gin.Engine, sessions *auth.SessionService, handlers Handlers) *Router {
	return &Router{
		engine:   engine,
		sessions: sessions,
		handlers: handlers,
	}
}

// Setup registers all routes with the engine. Every page runs through the
// session middleware; the browsing pages additionally require a login.
func (r *Router) Setup() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pages := r.engine.Group("/", middleware.Authenticate(r.sessions))

	pages.GET("/", r.handlers.Auth.Index)

	anonymous := pages.Group("/", middleware.RedirectIfAuthenticated())
	anonymous.GET("/login", r.handlers.Auth.ShowLogin)
	anonymous.POST("/login", r.handlers.Auth.Login)
	anonymous.GET("/register", r.handlers.Auth.ShowRegister)
	anonymous.POST("/register", r.handlers.Auth.Register)

	pages.GET("/logout", r.handlers.Auth.Logout)

	protected := pages.Group("/", middleware.RequireAuth())
	protected.GET("/players", r.handlers.Players.List)
	protected.GET("/player/:id", r.handlers.Players.Detail)
	protected.GET("/teams", r.handlers.Teams.List)
	protected.GET("/team/:id", r.handlers.Teams.Detail)
	protected.GET("/games", r.handlers.Games.List)
	protected.GET("/game/:id", r.handlers.Games.Detail)
}
