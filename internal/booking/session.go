// Package booking coordinates one customer's flow from entering a
// show's seat view to committing a reservation.  A Session carries the
// holder identity and store handles explicitly, so several sessions can
// run in one process (or in separate processes sharing the database)
// without touching any shared globals.  Cross-session correctness rests
// entirely on the ledger's transactional commit; the session itself is
// single-threaded.
package booking

import (
    "context"
    "errors"
    "log"

    "github.com/avelldro/cinema-booking/internal/model"
    "github.com/avelldro/cinema-booking/internal/queue"
    "github.com/avelldro/cinema-booking/internal/seatmap"
)

// ErrEmptySelection is returned by Commit when no seats are selected.
// No transaction is attempted in that case.
var ErrEmptySelection = errors.New("no seats selected")

// ErrNoShow is returned when an operation requires a show but
// EnterShow has not been called yet.
var ErrNoShow = errors.New("no show entered")

// Ledger is the slice of the reservation store a session needs.
// *repository.ReservationRepo satisfies it.
type Ledger interface {
    StatusFor(ctx context.Context, showID uint64) ([]model.SeatRef, error)
    Commit(ctx context.Context, showID, holderID uint64, seats []model.SeatRef) error
}

// PublishFunc delivers a booking-confirmed event to the message broker.
// Publishing is best-effort: failures are logged, never surfaced to the
// customer.
type PublishFunc func(ctx context.Context, event queue.BookingConfirmedEvent) error

// Summary is what a successful commit presents to the customer.
type Summary struct {
    TicketCode string   `json:"ticket_code"`
    ShowTitle  string   `json:"show_title"`
    ShowTime   string   `json:"show_time"`
    SeatNames  []string `json:"seats"`
    TotalCents uint32   `json:"total_cents"`
}

// Session drives one active booking flow for one holder.
type Session struct {
    holder  *model.Holder
    ledger  Ledger
    publish PublishFunc

    show *model.Show
    grid *seatmap.Grid
}

// NewSession creates a session for the given holder.  publish may be
// nil when no broker is configured.
func NewSession(holder *model.Holder, ledger Ledger, publish PublishFunc) *Session {
    if holder == nil || ledger == nil {
        panic("nil holder or ledger passed to NewSession")
    }
    return &Session{holder: holder, ledger: ledger, publish: publish}
}

// Holder returns the holder this session books for.
func (s *Session) Holder() *model.Holder { return s.holder }

// Show returns the show currently entered, or nil.
func (s *Session) Show() *model.Show { return s.show }

// Grid exposes the session's seat grid for rendering.  It is nil until
// EnterShow succeeds.
func (s *Session) Grid() *seatmap.Grid { return s.grid }

// EnterShow loads current occupancy for the show and resets the grid
// against it.  Any prior selection is discarded.
func (s *Session) EnterShow(ctx context.Context, show *model.Show) error {
    grid, err := seatmap.New(show.Rows, show.Cols)
    if err != nil {
        return err
    }
    occupied, err := s.ledger.StatusFor(ctx, show.ID)
    if err != nil {
        return err
    }
    grid.Reset(occupied)
    s.show = show
    s.grid = grid
    return nil
}

// Toggle flips the selection state of a seat in the current show's grid.
func (s *Session) Toggle(row, col int) error {
    if s.grid == nil {
        return ErrNoShow
    }
    return s.grid.Toggle(row, col)
}

// Selection returns the currently selected seats in selection order.
func (s *Session) Selection() []model.SeatRef {
    if s.grid == nil {
        return nil
    }
    return s.grid.Selected()
}

// Total returns the price of the current selection in cents.
func (s *Session) Total() uint32 {
    if s.grid == nil || s.show == nil {
        return 0
    }
    return s.grid.Total(s.show.PriceCents)
}

// Commit submits the current selection to the ledger as one atomic
// operation and reconciles local state with the outcome:
//
//   - success: a Summary is returned, the grid is reloaded (the new
//     seats now show as reserved, selection cleared) and a
//     booking-confirmed event is published best-effort;
//   - conflict (repository.ErrSeatTaken): the grid is reloaded so it
//     reflects true availability, the prior selection is discarded and
//     the error is returned for the caller to surface.  The session
//     never retries on its own since availability has changed;
//   - any other storage failure: the grid is reloaded defensively and
//     the error is returned; the customer may simply try again.
func (s *Session) Commit(ctx context.Context) (*Summary, error) {
    if s.grid == nil || s.show == nil {
        return nil, ErrNoShow
    }
    seats := s.grid.Selected()
    if len(seats) == 0 {
        return nil, ErrEmptySelection
    }
    summary := &Summary{
        TicketCode: s.holder.TicketCode,
        ShowTitle:  s.show.Title,
        ShowTime:   s.show.ShowTime,
        SeatNames:  s.grid.SelectedNames(),
        TotalCents: s.grid.Total(s.show.PriceCents),
    }
    if err := s.ledger.Commit(ctx, s.show.ID, s.holder.ID, seats); err != nil {
        s.reload(ctx)
        return nil, err
    }
    s.reload(ctx)
    if s.publish != nil {
        event := queue.BookingConfirmedEvent{
            HolderID:   s.holder.ID,
            TicketCode: summary.TicketCode,
            ShowID:     s.show.ID,
            ShowTitle:  summary.ShowTitle,
            ShowTime:   summary.ShowTime,
            SeatNames:  summary.SeatNames,
            TotalCents: summary.TotalCents,
        }
        if err := s.publish(ctx, event); err != nil {
            log.Printf("booking: publish confirmed event failed: %v", err)
        }
    }
    return summary, nil
}

// reload refreshes the grid from the ledger, clearing the selection.
// A failed refresh keeps the last known reserved set but still clears
// the selection, which is the safe direction after a commit attempt.
func (s *Session) reload(ctx context.Context) {
    occupied, err := s.ledger.StatusFor(ctx, s.show.ID)
    if err != nil {
        log.Printf("booking: reload seat status failed: %v", err)
        s.grid.ClearSelection()
        return
    }
    s.grid.Reset(occupied)
}
