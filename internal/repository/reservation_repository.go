package repository

import (
    "context"
    "database/sql"

    "github.com/avelldro/cinema-booking/internal/model"
)

// ReservationRepo is the transactional ledger of committed seat
// assignments.  Reservations are append-only; the repo exposes a read
// of current occupancy and an atomic multi-seat commit.  Uniqueness per
// (show, row, col) is enforced by the database schema itself rather
// than an application-level pre-check, because a check-then-insert race
// is exactly the scenario two concurrent customers trigger.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// StatusFor returns the coordinates of every reserved seat for the
// given show, ordered by row then column for deterministic rendering.
// The read runs outside any transaction and may be slightly stale
// relative to concurrent commits; Commit re-validates at insert time,
// so staleness here only affects what the grid displays.
func (r *ReservationRepo) StatusFor(ctx context.Context, showID uint64) ([]model.SeatRef, error) {
    const q = `SELECT row_idx, col_idx
               FROM reservations
               WHERE show_id = ?
               ORDER BY row_idx, col_idx`
    rows, err := r.db.QueryContext(ctx, q, showID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    occupied := make([]model.SeatRef, 0)
    for rows.Next() {
        var s model.SeatRef
        if err := rows.Scan(&s.Row, &s.Col); err != nil {
            return nil, err
        }
        occupied = append(occupied, s)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return occupied, nil
}

// Commit inserts every requested seat as a reservation for the holder
// in a single all-or-nothing transaction.  If any seat collides with an
// existing reservation (including one committed concurrently between
// the caller's last StatusFor and this call), the UNIQUE key on
// (show_id, row_idx, col_idx) rejects the insert, the transaction is
// rolled back and ErrSeatTaken is returned.  Any other storage failure
// is rolled back identically and returned as-is.  The transaction is
// durably committed before a nil error is returned.  An empty seat
// list is rejected with ErrNoSeats before any transaction is opened.
func (r *ReservationRepo) Commit(ctx context.Context, showID, holderID uint64, seats []model.SeatRef) error {
    if len(seats) == 0 {
        return ErrNoSeats
    }
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if err := r.createBulkTx(ctx, tx, showID, holderID, seats); err != nil {
        if isDuplicateKey(err) {
            return ErrSeatTaken
        }
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// createBulkTx inserts multiple reservation rows in a single statement
// within the provided transaction.  The caller must commit or roll back.
func (r *ReservationRepo) createBulkTx(ctx context.Context, tx *sql.Tx, showID, holderID uint64, seats []model.SeatRef) error {
    query := `INSERT INTO reservations (show_id, holder_id, row_idx, col_idx) VALUES `
    args := make([]interface{}, 0, len(seats)*4)
    for i, s := range seats {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?, ?)"
        args = append(args, showID, holderID, s.Row, s.Col)
    }
    _, err := tx.ExecContext(ctx, query, args...)
    return err
}

// HolderReservation couples one committed reservation row with the
// show it belongs to.  It is returned by ListByHolder for receipt
// views.
type HolderReservation struct {
    model.Reservation
    ShowTitle  string `json:"show_title"`
    ShowTime   string `json:"show_time"`
    PriceCents uint32 `json:"price_cents"`
}

// ListByHolder returns all reservations committed by the given holder
// along with show details, ordered by show then seat position.  When no
// reservations exist, an empty slice is returned.
func (r *ReservationRepo) ListByHolder(ctx context.Context, holderID uint64) ([]HolderReservation, error) {
    const q = `SELECT r.id, r.show_id, r.holder_id, r.row_idx, r.col_idx, r.created_at,
                      s.title, s.show_time, s.price_cents
               FROM reservations r
               JOIN shows s ON s.id = r.show_id
               WHERE r.holder_id = ?
               ORDER BY s.title, s.show_time, r.row_idx, r.col_idx`
    rows, err := r.db.QueryContext(ctx, q, holderID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    items := make([]HolderReservation, 0)
    for rows.Next() {
        var h HolderReservation
        if err := rows.Scan(
            &h.ID, &h.ShowID, &h.HolderID, &h.Row, &h.Col, &h.CreatedAt,
            &h.ShowTitle, &h.ShowTime, &h.PriceCents,
        ); err != nil {
            return nil, err
        }
        items = append(items, h)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return items, nil
}
