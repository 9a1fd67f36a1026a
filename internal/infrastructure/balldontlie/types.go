package balldontlie

import "github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/stats"

// The upstream API wraps every response in an envelope: list endpoints
// return {"data": [...], "meta": {"next_cursor": ..., "per_page": ...}},
// single-entity endpoints return {"data": {...}}.

// pageMeta is the pagination block of a list envelope
type pageMeta struct {
	NextCursor stats.Cursor `json:"next_cursor"`
	PerPage    int          `json:"per_page"`
}

// listEnvelope is the upstream envelope for list endpoints
type listEnvelope[T any] struct {
	Data []T       `json:"data"`
	Meta *pageMeta `json:"meta"`
}

// itemEnvelope is the upstream envelope for single-entity endpoints
type itemEnvelope[T any] struct {
	Data *T `json:"data"`
}

// buildPage derives the normalized page result from a list envelope.
// HasNext is the presence of next_cursor; HasPrev is the presence of the
// cursor supplied on the request.
func buildPage[T any](env listEnvelope[T], current stats.Cursor) *stats.Page[T] {
	page := &stats.Page[T]{
		Items:         env.Data,
		HasPrev:       !current.IsZero(),
		CurrentCursor: current,
	}
	if page.Items == nil {
		page.Items = make([]T, 0)
	}
	if env.Meta != nil && !env.Meta.NextCursor.IsZero() {
		page.HasNext = true
		page.NextCursor = env.Meta.NextCursor
	}
	return page
}
