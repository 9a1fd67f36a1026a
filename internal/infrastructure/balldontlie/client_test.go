package balldontlie

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/stats"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
		PerPage:        25,
		RosterPerPage:  100,
	}, nil)
	require.NoError(t, err)
	return client, server
}

func TestClient_ListPlayers(t *testing.T) {
	t.Run("parses envelope and derives pagination", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/players", r.URL.Path)
			assert.Equal(t, "25", r.URL.Query().Get("per_page"))
			assert.Equal(t, "lebron", r.URL.Query().Get("search"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"data": [
					{"id": 237, "first_name": "LeBron", "last_name": "James", "position": "F",
					 "team": {"id": 14, "full_name": "Los Angeles Lakers", "abbreviation": "LAL"}}
				],
				"meta": {"next_cursor": 238, "per_page": 25}
			}`))
		})

		page, err := client.ListPlayers(context.Background(), stats.PlayerQuery{Search: "lebron"})
		require.NoError(t, err)

		require.Len(t, page.Items, 1)
		assert.Equal(t, 237, page.Items[0].ID)
		assert.Equal(t, "LeBron James", page.Items[0].FullName())
		assert.Equal(t, 14, page.Items[0].Team.ID)
		assert.True(t, page.HasNext)
		assert.False(t, page.HasPrev)
		assert.Equal(t, "238", page.NextCursor.String())
	})

	t.Run("forwards cursor and marks previous page", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "100", r.URL.Query().Get("cursor"))
			w.Write([]byte(`{"data": [], "meta": {"per_page": 25}}`))
		})

		page, err := client.ListPlayers(context.Background(), stats.PlayerQuery{Cursor: stats.Cursor("100")})
		require.NoError(t, err)

		assert.True(t, page.HasPrev)
		assert.False(t, page.HasNext)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
	})

	t.Run("forwards team filter", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, []string{"14"}, r.URL.Query()["team_ids[]"])
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			w.Write([]byte(`{"data": []}`))
		})

		_, err := client.ListPlayers(context.Background(), stats.PlayerQuery{
			PerPage: 100,
			TeamIDs: []int{14},
		})
		require.NoError(t, err)
	})

	t.Run("maps error status to request failed", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.ListPlayers(context.Background(), stats.PlayerQuery{})
		assert.ErrorIs(t, err, stats.ErrUpstreamRequestFailed)
	})

	t.Run("maps malformed body to invalid response", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": "not an array"`))
		})

		_, err := client.ListPlayers(context.Background(), stats.PlayerQuery{})
		assert.ErrorIs(t, err, stats.ErrUpstreamInvalidResponse)
	})

	t.Run("maps transport failure to unavailable", func(t *testing.T) {
		client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		_, err := client.ListPlayers(context.Background(), stats.PlayerQuery{})
		assert.ErrorIs(t, err, stats.ErrUpstreamUnavailable)
	})
}

func TestClient_GetPlayer(t *testing.T) {
	t.Run("returns a single player", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/players/237", r.URL.Path)
			w.Write([]byte(`{"data": {"id": 237, "first_name": "LeBron", "last_name": "James"}}`))
		})

		player, err := client.GetPlayer(context.Background(), 237)
		require.NoError(t, err)
		assert.Equal(t, 237, player.ID)
	})

	t.Run("maps 404 to not found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetPlayer(context.Background(), 999999)
		assert.ErrorIs(t, err, stats.ErrNotFound)
	})

	t.Run("maps null data to not found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": null}`))
		})

		_, err := client.GetPlayer(context.Background(), 999999)
		assert.ErrorIs(t, err, stats.ErrNotFound)
	})
}

func TestClient_ListTeams(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams", r.URL.Path)
		w.Write([]byte(`{
			"data": [
				{"id": 1, "abbreviation": "ATL", "city": "Atlanta", "full_name": "Atlanta Hawks", "name": "Hawks"},
				{"id": 2, "abbreviation": "BOS", "city": "Boston", "full_name": "Boston Celtics", "name": "Celtics"}
			]
		}`))
	})

	teams, err := client.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Atlanta Hawks", teams[0].FullName)
}

func TestClient_ListGames(t *testing.T) {
	t.Run("forwards date filter", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/games", r.URL.Path)
			assert.Equal(t, []string{"2024-12-25"}, r.URL.Query()["dates[]"])
			w.Write([]byte(`{
				"data": [
					{"id": 1, "date": "2024-12-25", "season": 2024, "status": "Final",
					 "home_team_score": 115, "visitor_team_score": 110,
					 "home_team": {"id": 14}, "visitor_team": {"id": 2}}
				],
				"meta": {"per_page": 25}
			}`))
		})

		page, err := client.ListGames(context.Background(), stats.GameQuery{Dates: []string{"2024-12-25"}})
		require.NoError(t, err)

		require.Len(t, page.Items, 1)
		assert.Equal(t, 115, page.Items[0].HomeTeamScore)
		assert.Equal(t, 14, page.Items[0].HomeTeam.ID)
	})

	t.Run("string cursor in meta is accepted", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": [], "meta": {"next_cursor": "abc123", "per_page": 25}}`))
		})

		page, err := client.ListGames(context.Background(), stats.GameQuery{})
		require.NoError(t, err)
		assert.True(t, page.HasNext)
		assert.Equal(t, "abc123", page.NextCursor.String())
	})
}

func TestClient_Authorization(t *testing.T) {
	t.Run("sends bearer header when a key is configured", func(t *testing.T) {
		var header string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header = r.Header.Get("Authorization")
			w.Write([]byte(`{"data": []}`))
		}))
		defer server.Close()

		client, err := NewClient(&Config{BaseURL: server.URL, APIKey: "real-key"}, nil)
		require.NoError(t, err)

		_, err = client.ListTeams(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer real-key", header)
	})

	t.Run("omits header without a key", func(t *testing.T) {
		var present bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, present = r.Header["Authorization"]
			w.Write([]byte(`{"data": []}`))
		}))
		defer server.Close()

		client, err := NewClient(&Config{BaseURL: server.URL}, nil)
		require.NoError(t, err)

		_, err = client.ListTeams(context.Background())
		require.NoError(t, err)
		assert.False(t, present)
	})
}
