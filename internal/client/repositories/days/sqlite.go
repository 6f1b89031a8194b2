package days

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/daycast-app/daycast/internal/client/models"
	"github.com/daycast-app/daycast/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// Aggregates are stored as JSON blobs keyed by date.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, day *models.Day, fetchedAt time.Time) error {
	payload, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("failed to encode day %s: %w", day.Date, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO days (date, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, day.Date, payload, fetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to cache day %s: %w", day.Date, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, date string) (*models.Day, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM days WHERE date = ?`, date).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached day %s: %w", date, err)
	}

	var day models.Day
	if err := json.Unmarshal(payload, &day); err != nil {
		return nil, fmt.Errorf("failed to decode cached day %s: %w", date, err)
	}
	return &day, nil
}

func (r *SQLiteRepository) Dates(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date FROM days ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached days: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}
