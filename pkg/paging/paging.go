// Package paging implements keyset pagination over id-ordered rows. Cursors
// are previously-issued row ids; pages are built from a limit+1 fetch so
// HasMore never needs a second count query.
package paging

import (
	"strconv"

	"campus-notice-backend/pkg/apperr"
)

// Page is one window of a descending-id listing. NextCursor is nil on the
// last page.
type Page[T any] struct {
	Items      []T
	NextCursor *string
	HasMore    bool
}

// ParseCursor decodes an opaque cursor into the row id it was issued from.
// An empty cursor means the first page.
func ParseCursor(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.Validation, "invalid cursor")
	}
	return id, nil
}

// Window turns the result of a limit+1 fetch into a page. rows must be
// ordered by descending id; id extracts the sort key of a row.
func Window[T any](rows []T, limit int, id func(T) int64) Page[T] {
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	page := Page[T]{Items: rows, HasMore: hasMore}
	if hasMore {
		cursor := strconv.FormatInt(id(rows[len(rows)-1]), 10)
		page.NextCursor = &cursor
	}
	return page
}
