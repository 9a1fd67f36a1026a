package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/stats"
)

// maxResponseSize limits the response body size to prevent memory exhaustion
const maxResponseSize = 10 * 1024 * 1024 // 10MB max response

// Client implements the stats.Gateway interface against the balldontlie API
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new balldontlie API client with the given configuration
func NewClient(config *Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// ---------------------------------------------------------------------------
// Players
// ---------------------------------------------------------------------------

// ListPlayers returns one page of players
func (c *Client) ListPlayers(ctx context.Context, query stats.PlayerQuery) (*stats.Page[stats.Player], error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(c.pageSize(query.PerPage)))
	if !query.Cursor.IsZero() {
		params.Set("cursor", query.Cursor.String())
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	for _, id := range query.TeamIDs {
		params.Add("team_ids[]", strconv.Itoa(id))
	}

	body, err := c.doRequest(ctx, "players", params)
	if err != nil {
		return nil, err
	}

	var env listEnvelope[stats.Player]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", stats.ErrUpstreamInvalidResponse, err)
	}

	return buildPage(env, query.Cursor), nil
}

// GetPlayer returns a single player by ID
func (c *Client) GetPlayer(ctx context.Context, id int) (*stats.Player, error) {
	body, err := c.doRequest(ctx, "players/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var env itemEnvelope[stats.Player]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", stats.ErrUpstreamInvalidResponse, err)
	}
	if env.Data == nil {
		return nil, stats.ErrNotFound
	}
	return env.Data, nil
}

// ---------------------------------------------------------------------------
// Teams
// ---------------------------------------------------------------------------

// ListTeams returns the complete team list in a single call
func (c *Client) ListTeams(ctx context.Context) ([]stats.Team, error) {
	body, err := c.doRequest(ctx, "teams", nil)
	if err != nil {
		return nil, err
	}

	var env listEnvelope[stats.Team]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", stats.ErrUpstreamInvalidResponse, err)
	}
	if env.Data == nil {
		return make([]stats.Team, 0), nil
	}
	return env.Data, nil
}

// GetTeam returns a single team by ID
func (c *Client) GetTeam(ctx context.Context, id int) (*stats.Team, error) {
	body, err := c.doRequest(ctx, "teams/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var env itemEnvelope[stats.Team]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", stats.ErrUpstreamInvalidResponse, err)
	}
	if env.Data == nil {
		return nil, stats.ErrNotFound
	}
	return env.Data, nil
}

// ---------------------------------------------------------------------------
// Games
// ---------------------------------------------------------------------------

// ListGames returns one page of games
func (c *Client) ListGames(ctx context.Context, query stats.GameQuery) (*stats.Page[stats.Game], error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(c.pageSize(query.PerPage)))
	if !query.Cursor.IsZero() {
		params.Set("cursor", query.Cursor.String())
	}
	for _, date := range query.Dates {
		params.Add("dates[]", date)
	}

	body, err := c.doRequest(ctx, "games", params)
	if err != nil {
		return nil, err
	}

	var env listEnvelope[stats.Game]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", stats.ErrUpstreamInvalidResponse, err)
	}

	return buildPage(env, query.Cursor), nil
}

// GetGame returns a single game by ID
func (c *Client) GetGame(ctx context.Context, id int) (*stats.Game, error) {
	body, err := c.doRequest(ctx, "games/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var env itemEnvelope[stats.Game]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", stats.ErrUpstreamInvalidResponse, err)
	}
	if env.Data == nil {
		return nil, stats.ErrNotFound
	}
	return env.Data, nil
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// pageSize resolves the requested page size against the configured default
func (c *Client) pageSize(requested int) int {
	if requested > 0 {
		return requested
	}
	return c.config.PerPage
}

// RosterPageSize returns the configured page size for team roster lookups
func (c *Client) RosterPageSize() int {
	return c.config.RosterPerPage
}

// doRequest performs an HTTP GET against the upstream API and returns the
// raw body. All failure modes map to the stats sentinel errors; callers
// never see transport-level error types.
func (c *Client) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.config.BaseURL + "/" + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("balldontlie: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.config.HasAPIKey() {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Upstream request failed",
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", stats.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Upstream request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		return nil, stats.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		c.logger.Warn("Upstream returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: HTTP %d", stats.ErrUpstreamRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", stats.ErrUpstreamInvalidResponse, err)
	}

	return body, nil
}

// Ensure Client implements stats.Gateway interface
var _ stats.Gateway = (*Client)(nil)
