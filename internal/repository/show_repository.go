// Package repository contains data access logic for the catalog of shows.
// This file defines repository methods for shows. A Show represents one
// screening of a movie at a fixed time slot together with its seat grid
// configuration. The catalog is read-only at runtime; rows are written
// only by the seed tool.
package repository

import (
    "context"      // context for controlling query lifetime
    "database/sql" // sql provides DB abstraction
    "errors"       // errors for sentinel comparisons

    "github.com/avelldro/cinema-booking/internal/model"
)

// ShowRepo manages read access to the show catalog.
type ShowRepo struct {
    db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
    return &ShowRepo{db: db}
}

// ListShows returns every show in the catalog ordered by title then
// show time.  The ordering is stable so dropdowns and summaries render
// deterministically.  An empty catalog yields an empty slice, not nil.
func (r *ShowRepo) ListShows(ctx context.Context) ([]model.Show, error) {
    const q = `SELECT id, title, show_time, price_cents, layout_rows, layout_cols
               FROM shows
               ORDER BY title, show_time`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    shows := make([]model.Show, 0)
    for rows.Next() {
        var s model.Show
        if err := rows.Scan(&s.ID, &s.Title, &s.ShowTime, &s.PriceCents, &s.Rows, &s.Cols); err != nil {
            return nil, err
        }
        shows = append(shows, s)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return shows, nil
}

// GetByTitleAndTime retrieves the show identified by the title plus
// show-time composite.  It returns ErrShowNotFound when no such show
// exists.
func (r *ShowRepo) GetByTitleAndTime(ctx context.Context, title, showTime string) (*model.Show, error) {
    const q = `SELECT id, title, show_time, price_cents, layout_rows, layout_cols
               FROM shows
               WHERE title = ? AND show_time = ?`
    var s model.Show
    err := r.db.QueryRowContext(ctx, q, title, showTime).Scan(&s.ID, &s.Title, &s.ShowTime, &s.PriceCents, &s.Rows, &s.Cols)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrShowNotFound
        }
        return nil, err
    }
    return &s, nil
}

// GetByID retrieves a show by its primary key.  It returns
// ErrShowNotFound if there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
    const q = `SELECT id, title, show_time, price_cents, layout_rows, layout_cols
               FROM shows
               WHERE id = ?`
    var s model.Show
    err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Title, &s.ShowTime, &s.PriceCents, &s.Rows, &s.Cols)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrShowNotFound
        }
        return nil, err
    }
    return &s, nil
}
