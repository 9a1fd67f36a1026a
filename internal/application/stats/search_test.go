package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/stats"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"french slash format", "25/12/2024", "2024-12-25"},
		{"french dash format", "25-12-2024", "2024-12-25"},
		{"iso format passes through", "2024-12-25", "2024-12-25"},
		{"single digit day and month padded", "5/3/2024", "2024-03-05"},
		{"two digit year not converted", "25/12/24", "25/12/24"},
		{"non numeric parts forwarded", "aa/bb/cccc", "aa/bb/cccc"},
		{"free text forwarded", "hier", "hier"},
		{"empty string forwarded", "", ""},
		{"too many slash parts forwarded", "1/2/3/2024", "1/2/3/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.input))
		})
	}
}

func TestFilterTeams(t *testing.T) {
	teams := []stats.Team{
		{ID: 1, Name: "Lakers", City: "Los Angeles", FullName: "Los Angeles Lakers", Abbreviation: "LAL"},
		{ID: 2, Name: "Celtics", City: "Boston", FullName: "Boston Celtics", Abbreviation: "BOS"},
		{ID: 3, Name: "Clippers", City: "Los Angeles", FullName: "LA Clippers", Abbreviation: "LAC"},
	}

	t.Run("matches by city fragment", func(t *testing.T) {
		got := FilterTeams(teams, "los")
		assert.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("matches case insensitively", func(t *testing.T) {
		got := FilterTeams(teams, "LAKERS")
		assert.Len(t, got, 1)
		assert.Equal(t, "Lakers", got[0].Name)
	})

	t.Run("matches by abbreviation", func(t *testing.T) {
		got := FilterTeams(teams, "bos")
		assert.Len(t, got, 1)
		assert.Equal(t, "Celtics", got[0].Name)
	})

	t.Run("empty query keeps everything", func(t *testing.T) {
		assert.Len(t, FilterTeams(teams, ""), 3)
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		got := FilterTeams(teams, "warriors")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
