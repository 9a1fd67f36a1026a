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

// PlayersHandler serves the player list and detail pages.
type PlayersHandler struct {
	BaseHandler
	browse *appstats.BrowseService
	logger *zap.Logger
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(browse *appstats.BrowseService, logger *zap.Logger) *PlayersHandler {
	return &PlayersHandler{
		browse: browse,
		logger: logger,
	}
}

// List renders the paginated player table. Upstream failures degrade into an
// empty page with a notice rather than an error page.
func (h *PlayersHandler) List(c *gin.Context) {
	search := c.Query("search")
	cursor := stats.Cursor(c.Query("cursor"))

	page, err := h.browse.Players(c.Request.Context(), search, cursor)
	if err != nil {
		h.logger.Warn("player list unavailable", zap.Error(err))
		h.Render(c, http.StatusOK, "players.html", gin.H{
			"Title":       "Joueurs NBA",
			"Error":       "Erreur lors du chargement des joueurs",
			"Players":     []stats.Player{},
			"Meta":        &stats.Page[stats.Player]{},
			"BasePath":    "/players",
			"SearchQuery": search,
		})
		return
	}

	h.Render(c, http.StatusOK, "players.html", gin.H{
		"Title":        "Joueurs NBA",
		"Players":      page.Items,
		"Meta":         page,
		"BasePath":     "/players",
		"SearchQuery":  search,
		"SearchActive": search != "",
	})
}

// Detail renders a single player's page.
func (h *PlayersHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.RedirectWithFlash(c, "/players", "Joueur non trouvé")
		return
	}

	player, err := h.browse.PlayerDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, stats.ErrNotFound) {
			h.RedirectWithFlash(c, "/players", "Joueur non trouvé")
			return
		}
		h.logger.Warn("player detail unavailable", zap.Int("id", id), zap.Error(err))
		h.RedirectWithFlash(c, "/players", "Erreur lors du chargement du joueur")
		return
	}

	h.Render(c, http.StatusOK, "player_detail.html", gin.H{
		"Title":  player.FullName(),
		"Player": player,
	})
}
