package stats

import (
	"encoding/json"
	"strconv"
)

// Cursor is an opaque, upstream-issued pagination token. It is threaded
// between the browser, this application and the upstream API without ever
// being parsed or constructed locally.
type Cursor string

// IsZero reports whether the cursor is absent
func (c Cursor) IsZero() bool {
	return c == ""
}

// String returns the cursor as a query-parameter value
func (c Cursor) String() string {
	return string(c)
}

// UnmarshalJSON accepts either a JSON string or a JSON number. The upstream
// envelope emits numeric cursors today; the token stays opaque either way.
func (c *Cursor) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Cursor(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Cursor(n.String())
	return nil
}

// MarshalJSON emits the cursor as a number when it is numeric, mirroring the
// upstream representation, and as a string otherwise
func (c Cursor) MarshalJSON() ([]byte, error) {
	if c == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(c), 10, 64); err == nil {
		return []byte(c), nil
	}
	return json.Marshal(string(c))
}

// Page is the normalized page-result shape derived from the upstream
// envelope. HasPrev is approximated as "a cursor was supplied on this
// request"; the upstream API only paginates forward.
type Page[T any] struct {
	Items         []T
	HasNext       bool
	HasPrev       bool
	NextCursor    Cursor
	CurrentCursor Cursor
}

// PlayerQuery holds the query options for listing players
type PlayerQuery struct {
	Cursor  Cursor
	PerPage int
	Search  string
	TeamIDs []int
}

// GameQuery holds the query options for listing games
type GameQuery struct {
	Cursor  Cursor
	PerPage int
	Dates   []string
}
