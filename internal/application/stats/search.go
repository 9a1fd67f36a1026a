package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/stats"
)

// NormalizeDate rewrites a user-supplied date into the YYYY-MM-DD form the
// upstream API expects. Accepted inputs: YYYY-MM-DD (passed through),
// DD/MM/YYYY and DD-MM-YYYY. Anything that does not match these shapes is
// forwarded verbatim; this is a best-effort heuristic, not a date parser.
func NormalizeDate(input string) string {
	if strings.Contains(input, "/") {
		parts := strings.Split(input, "/")
		if len(parts) == 3 && len(parts[2]) == 4 {
			if normalized, ok := assembleISODate(parts[2], parts[1], parts[0]); ok {
				return normalized
			}
		}
		return input
	}

	if strings.Contains(input, "-") && len(strings.Split(input, "-")[0]) == 2 {
		parts := strings.Split(input, "-")
		if len(parts) == 3 {
			if normalized, ok := assembleISODate(parts[2], parts[1], parts[0]); ok {
				return normalized
			}
		}
	}

	return input
}

// assembleISODate builds YYYY-MM-DD from textual year, month and day parts,
// zero-padding month and day. Non-numeric parts report failure so the
// caller can fall back to the raw input.
func assembleISODate(year, month, day string) (string, bool) {
	for _, part := range []string{year, month, day} {
		if _, err := strconv.Atoi(part); err != nil {
			return "", false
		}
	}
	return fmt.Sprintf("%s-%s-%s", year, zeroPad(month), zeroPad(day)), true
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// FilterTeams keeps the teams whose full name, name, city or abbreviation
// contains the query, case-insensitively. The upstream API has no team
// search, so this runs locally over the complete list. Upstream order is
// preserved.
func FilterTeams(teams []stats.Team, query string) []stats.Team {
	q := strings.ToLower(query)
	filtered := make([]stats.Team, 0)
	for _, team := range teams {
		if strings.Contains(strings.ToLower(team.FullName), q) ||
			strings.Contains(strings.ToLower(team.Name), q) ||
			strings.Contains(strings.ToLower(team.City), q) ||
			strings.Contains(strings.ToLower(team.Abbreviation), q) {
			filtered = append(filtered, team)
		}
	}
	return filtered
}
