// Package sources retrieves the raw content of named record collections.
//
// A source only knows how to fetch bytes; parsing and the failure policy
// belong to the loader.
package sources

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the named collection does not exist.
var ErrNotFound = errors.New("source not found")

// Source fetches the raw JSON content of a named record collection.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}
