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

// TeamsHandler serves the team list and detail pages.
type TeamsHandler struct {
	BaseHandler
	browse *appstats.BrowseService
	logger *zap.Logger
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(browse *appstats.BrowseService, logger *zap.Logger) *TeamsHandler {
	return &TeamsHandler{
		browse: browse,
		logger: logger,
	}
}

// List renders all teams, optionally filtered by the search box. The team
// list is small enough that filtering happens locally.
func (h *TeamsHandler) List(c *gin.Context) {
	search := c.Query("search")

	teams, err := h.browse.Teams(c.Request.Context(), search)
	if err != nil {
		h.logger.Warn("team list unavailable", zap.Error(err))
		h.Render(c, http.StatusOK, "teams.html", gin.H{
			"Title":       "Équipes NBA",
			"Error":       "Erreur lors du chargement des équipes",
			"Teams":       []stats.Team{},
			"SearchQuery": search,
		})
		return
	}

	h.Render(c, http.StatusOK, "teams.html", gin.H{
		"Title":        "Équipes NBA",
		"Teams":        teams,
		"SearchQuery":  search,
		"SearchActive": search != "",
	})
}

// Detail renders a team's page with its current roster.
func (h *TeamsHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.RedirectWithFlash(c, "/teams", "Équipe non trouvée")
		return
	}

	detail, err := h.browse.TeamDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, stats.ErrNotFound) {
			h.RedirectWithFlash(c, "/teams", "Équipe non trouvée")
			return
		}
		h.logger.Warn("team detail unavailable", zap.Int("id", id), zap.Error(err))
		h.RedirectWithFlash(c, "/teams", "Erreur lors du chargement de l'équipe")
		return
	}

	h.Render(c, http.StatusOK, "team_detail.html", gin.H{
		"Title":   detail.Team.FullName,
		"Team":    detail.Team,
		"Players": detail.Players,
	})
}
