// Package days is a local read cache of day aggregates, so history can be
// browsed while the server is unreachable. The server stays authoritative;
// entries are overwritten wholesale on every successful fetch.
package days

import (
	"context"
	"time"

	"github.com/daycast-app/daycast/internal/client/models"
)

type Repository interface {
	// Put stores (or replaces) the cached aggregate for day.Date.
	Put(ctx context.Context, day *models.Day, fetchedAt time.Time) error
	// Get returns the cached aggregate, or nil when the date is not cached.
	Get(ctx context.Context, date string) (*models.Day, error)
	// Dates lists cached dates, newest first.
	Dates(ctx context.Context) ([]string, error)
}
