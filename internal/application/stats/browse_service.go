package stats

import (
	"context"

	"go.uber.org/zap"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/stats"
)

// BrowseServiceConfig contains configuration for the browse service
type BrowseServiceConfig struct {
	PerPage       int // page size for player and game listings
	RosterPerPage int // page size for team roster lookups
}

// DefaultBrowseServiceConfig returns default configuration
func DefaultBrowseServiceConfig() BrowseServiceConfig {
	return BrowseServiceConfig{
		PerPage:       25,
		RosterPerPage: 100,
	}
}

// BrowseService exposes the browsing and search operations backing the data
// pages. It delegates player and game search to the upstream API and filters
// teams locally, since the upstream offers no team search.
type BrowseService struct {
	gateway stats.Gateway
	config  BrowseServiceConfig
	logger  *zap.Logger
}

// NewBrowseService creates a new browse service
func NewBrowseService(gateway stats.Gateway, config BrowseServiceConfig, logger *zap.Logger) *BrowseService {
	if config.PerPage <= 0 {
		config.PerPage = 25
	}
	if config.RosterPerPage <= 0 {
		config.RosterPerPage = 100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowseService{
		gateway: gateway,
		config:  config,
		logger:  logger,
	}
}

// Players returns one page of players, forwarding the search term to the
// upstream `search` parameter when present
func (s *BrowseService) Players(ctx context.Context, search string, cursor stats.Cursor) (*stats.Page[stats.Player], error) {
	page, err := s.gateway.ListPlayers(ctx, stats.PlayerQuery{
		Cursor:  cursor,
		PerPage: s.config.PerPage,
		Search:  search,
	})
	if err != nil {
		s.logger.Warn("Failed to load players",
			zap.String("search", search),
			zap.String("cursor", cursor.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Players page loaded",
		zap.Int("count", len(page.Items)),
		zap.Bool("has_next", page.HasNext))
	return page, nil
}

// PlayerDetail returns a single player
func (s *BrowseService) PlayerDetail(ctx context.Context, id int) (*stats.Player, error) {
	return s.gateway.GetPlayer(ctx, id)
}

// Teams returns the team list, locally filtered when a query is present.
// Result order is the order returned by the upstream.
func (s *BrowseService) Teams(ctx context.Context, search string) ([]stats.Team, error) {
	teams, err := s.gateway.ListTeams(ctx)
	if err != nil {
		s.logger.Warn("Failed to load teams", zap.Error(err))
		return nil, err
	}

	if search == "" {
		return teams, nil
	}

	filtered := FilterTeams(teams, search)
	s.logger.Debug("Teams filtered",
		zap.String("search", search),
		zap.Int("matches", len(filtered)))
	return filtered, nil
}

// TeamDetail holds a team together with its current roster
type TeamDetail struct {
	Team    stats.Team
	Players []stats.Player
}

// TeamDetail returns a team and its roster. A roster lookup failure is not
// fatal: the team page still renders, with an empty player list.
func (s *BrowseService) TeamDetail(ctx context.Context, id int) (*TeamDetail, error) {
	team, err := s.gateway.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TeamDetail{
		Team:    *team,
		Players: s.TeamPlayers(ctx, id),
	}, nil
}

// TeamPlayers returns the players of a team, flattened to the bare entity
// sequence. Failures and empty results both produce an empty slice.
func (s *BrowseService) TeamPlayers(ctx context.Context, teamID int) []stats.Player {
	page, err := s.gateway.ListPlayers(ctx, stats.PlayerQuery{
		PerPage: s.config.RosterPerPage,
		TeamIDs: []int{teamID},
	})
	if err != nil {
		s.logger.Warn("Failed to load team roster",
			zap.Int("team_id", teamID),
			zap.Error(err))
		return make([]stats.Player, 0)
	}

	s.logger.Debug("Team roster loaded",
		zap.Int("team_id", teamID),
		zap.Int("count", len(page.Items)))
	return page.Items
}

// Games returns one page of games. A non-empty search term is treated as a
// date, normalized to YYYY-MM-DD and forwarded via `dates[]`.
func (s *BrowseService) Games(ctx context.Context, search string, cursor stats.Cursor) (*stats.Page[stats.Game], error) {
	query := stats.GameQuery{
		Cursor:  cursor,
		PerPage: s.config.PerPage,
	}
	if search != "" {
		query.Dates = []string{NormalizeDate(search)}
	}

	page, err := s.gateway.ListGames(ctx, query)
	if err != nil {
		s.logger.Warn("Failed to load games",
			zap.String("search", search),
			zap.String("cursor", cursor.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Games page loaded",
		zap.Int("count", len(page.Items)),
		zap.Bool("has_next", page.HasNext))
	return page, nil
}

// GameDetail returns a single game
func (s *BrowseService) GameDetail(ctx context.Context, id int) (*stats.Game, error) {
	return s.gateway.GetGame(ctx, id)
}
