package repository

import "github.com/BharAnu2109/Cricket/internal/model"

// Page represents a simple limit/offset window for listing operations.
// Kept intentionally small; query shaping belongs to higher layers.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count matching the query.
// Returning the total lets clients compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// PlayerFilter holds optional predicates for filtered listings.
// A nil field means "match all" for that column; this is a tri-state per
// field and is not the same as filtering on a NULL-valued column.
// Provided predicates are combined with AND.
type PlayerFilter struct {
	Country  *string
	Role     *model.PlayingRole
	IsActive *bool
}

// Empty reports whether no predicate is set.
func (f PlayerFilter) Empty() bool {
	return f.Country == nil && f.Role == nil && f.IsActive == nil
}
