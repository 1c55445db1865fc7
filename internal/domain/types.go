package domain

// ID is used across domain entities.
type ID = int64

// Status represents a lightweight state value.
type Status string

const (
	DefaultTake = 10
	MaxTake     = 100
)

// PageQuery carries the skip/take window and free-text search of a list call.
type PageQuery struct {
	Skip   int    `json:"skip"`
	Take   int    `json:"take"`
	Search string `json:"search,omitempty"`
}

// Normalize clamps the window into the accepted range.
func (q PageQuery) Normalize() PageQuery {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Take <= 0 {
		q.Take = DefaultTake
	}
	if q.Take > MaxTake {
		q.Take = MaxTake
	}
	return q
}

// Page is one window of a server-side list.
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Take  int `json:"take"`
}

// RequestContext carries the authenticated caller. Handlers copy its fields
// into explicit parameters; nothing below the HTTP layer reads it implicitly.
type RequestContext struct {
	SchoolID ID     `json:"schoolId"`
	UserID   ID     `json:"userId"`
	Role     string `json:"role"`
}
