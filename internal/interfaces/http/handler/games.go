package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appstats "github.com/NoahAndreani/NBA-Projet-compensatoire/internal/application/stats"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/stats"
)

// GamesHandler serves the game list and detail pages.
type GamesHandler struct {
	BaseHandler
	browse *appstats.BrowseService
	logger *zap.Logger
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(browse *appstats.BrowseService, logger *zap.Logger) *GamesHandler {
	return &GamesHandler{
		browse: browse,
		logger: logger,
	}
}

// List renders the paginated game table, optionally filtered by date.
func (h *GamesHandler) List(c *gin.Context) {
	search := c.Query("search")
	cursor := stats.Cursor(c.Query("cursor"))

	page, err := h.browse.Games(c.Request.Context(), search, cursor)
	if err != nil {
		h.logger.Warn("game list unavailable", zap.Error(err))
		h.Render(c, http.StatusOK, "games.html", gin.H{
			"Title":       "Matchs NBA",
			"Error":       "Erreur lors du chargement des matchs",
			"Games":       []stats.Game{},
			"Meta":        &stats.Page[stats.Game]{},
			"BasePath":    "/games",
			"SearchQuery": search,
		})
		return
	}

	h.Render(c, http.StatusOK, "games.html", gin.H{
		"Title":        "Matchs NBA",
		"Games":        page.Items,
		"Meta":         page,
		"BasePath":     "/games",
		"SearchQuery":  search,
		"SearchActive": search != "",
	})
}

// Detail renders a single game's page.
func (h *GamesHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.RedirectWithFlash(c, "/games", "Match non trouvé")
		return
	}

	game, err := h.browse.GameDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, stats.ErrNotFound) {
			h.RedirectWithFlash(c, "/games", "Match non trouvé")
			return
		}
		h.logger.Warn("game detail unavailable", zap.Int("id", id), zap.Error(err))
		h.RedirectWithFlash(c, "/games", "Erreur lors du chargement du match")
		return
	}

	h.Render(c, http.StatusOK, "game_detail.html", gin.H{
		"Title": game.HomeTeam.FullName + " vs " + game.VisitorTeam.FullName,
		"Game":  game,
	})
}
