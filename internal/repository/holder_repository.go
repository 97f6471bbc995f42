package repository // repository defines data access for ticket holders

import (
    "context"      // context allows query cancellation and timeouts
    "database/sql" // sql provides DB primitives
    "errors"       // errors for sentinel comparisons

    "github.com/avelldro/cinema-booking/internal/model"
)

// HolderRepo provides methods to work with ticket holders in the
// database.  Holders are append-only: a row is inserted once per issued
// ticket and never changed afterwards.
type HolderRepo struct {
    db *sql.DB
}

// NewHolderRepo constructs a HolderRepo with the given DB handle.
func NewHolderRepo(db *sql.DB) *HolderRepo {
    return &HolderRepo{db: db}
}

// MaxTicketNumber returns the highest integer suffix among all issued
// ticket codes whose prefix matches the given one, or 0 when no holder
// exists yet.  Sequencing is computed from this durable history rather
// than an in-memory counter so it survives process restarts.
func (r *HolderRepo) MaxTicketNumber(ctx context.Context, prefix string) (uint64, error) {
    const q = `SELECT COALESCE(MAX(CAST(SUBSTRING(ticket_code, ?) AS UNSIGNED)), 0)
               FROM holders
               WHERE ticket_code LIKE CONCAT(?, '%')`
    var max uint64
    // SUBSTRING is 1-based; skip the prefix characters.
    if err := r.db.QueryRowContext(ctx, q, len(prefix)+1, prefix).Scan(&max); err != nil {
        return 0, err
    }
    return max, nil
}

// Create inserts a new holder bound to the given ticket code and
// populates the generated ID.  When the code already exists the UNIQUE
// constraint on holders.ticket_code fires and ErrTicketCodeTaken is
// returned; the caller is expected to recompute the next code and retry.
func (r *HolderRepo) Create(ctx context.Context, h *model.Holder) error {
    const q = `INSERT INTO holders (ticket_code) VALUES (?)`
    res, err := r.db.ExecContext(ctx, q, h.TicketCode)
    if err != nil {
        if isDuplicateKey(err) {
            return ErrTicketCodeTaken
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    h.ID = uint64(id)
    return nil
}

// GetByID retrieves a holder by its primary key.  It returns
// ErrHolderNotFound if there is no matching row.
func (r *HolderRepo) GetByID(ctx context.Context, id uint64) (*model.Holder, error) {
    const q = `SELECT id, ticket_code FROM holders WHERE id = ?`
    var h model.Holder
    err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.TicketCode)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrHolderNotFound
        }
        return nil, err
    }
    return &h, nil
}
