package stats

import (
	"context"
	"errors"
)

// Errors reported by Gateway implementations
var (
	// ErrUpstreamUnavailable indicates a transport-level failure (connection
	// refused, timeout, DNS)
	ErrUpstreamUnavailable = errors.New("stats: upstream API unavailable")
	// ErrUpstreamRequestFailed indicates a non-2xx upstream response
	ErrUpstreamRequestFailed = errors.New("stats: upstream request failed")
	// ErrUpstreamInvalidResponse indicates a malformed upstream body
	ErrUpstreamInvalidResponse = errors.New("stats: invalid upstream response")
	// ErrNotFound indicates a single-entity lookup that matched nothing
	ErrNotFound = errors.New("stats: entity not found")
)

// Gateway is the read-only access port to the upstream basketball
// statistics API, the sole source of player, team and game data.
type Gateway interface {
	// ListPlayers returns one page of players, optionally filtered by a
	// search term or team identifiers
	ListPlayers(ctx context.Context, query PlayerQuery) (*Page[Player], error)

	// GetPlayer returns a single player by ID
	GetPlayer(ctx context.Context, id int) (*Player, error)

	// ListTeams returns the complete team list. The upstream team
	// collection is small enough that it is not paginated.
	ListTeams(ctx context.Context) ([]Team, error)

	// GetTeam returns a single team by ID
	GetTeam(ctx context.Context, id int) (*Team, error)

	// ListGames returns one page of games, optionally filtered by dates
	ListGames(ctx context.Context, query GameQuery) (*Page[Game], error)

	// GetGame returns a single game by ID
	GetGame(ctx context.Context, id int) (*Game, error)
}
