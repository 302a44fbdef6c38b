package store

import "errors"

// Sentinel errors returned by [LocalStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrUnknownItemType is returned for an [ItemType] outside the four
	// supported ones.
	ErrUnknownItemType = errors.New("unknown local storage item type")

	// ErrItemTypeMismatch is returned when the value (on write) or the
	// destination (on read) does not fit the requested item type.
	ErrItemTypeMismatch = errors.New("value does not match item type")

	// ErrCorruptedItem is returned when a stored value cannot be parsed as
	// the requested item type.
	ErrCorruptedItem = errors.New("stored item cannot be decoded")
)

// Low-level database operation errors, wrapped by the SQLite backend.
var (
	// ErrBuildingSQLQuery is returned when the query builder rejects its input.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
