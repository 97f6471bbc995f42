// Package seatmap holds the in-memory seat grid a booking session works
// against.  The grid tracks which seats are reserved (as of the last
// load from the ledger) and which the customer has selected locally but
// not yet committed.  It performs no I/O; callers load occupancy from
// the reservation ledger, mutate the grid synchronously and re-render
// from the returned state.  A Grid belongs to a single session and is
// not safe for concurrent use.
package seatmap

import (
    "errors"
    "fmt"

    "github.com/avelldro/cinema-booking/internal/model"
)

// ErrInvalidCoordinate is returned when a seat reference falls outside
// the grid.  Callers should have prevented it, but the grid fails
// loudly rather than clamping.
var ErrInvalidCoordinate = errors.New("seat coordinate out of range")

// SeatState describes what the grid knows about one seat.
type SeatState int

const (
    // Available means no ledger entry exists and the seat is not selected.
    Available SeatState = iota
    // Selected means the seat is in the local selection set, pre-commit.
    Selected
    // Reserved means a ledger entry existed at the last load.
    Reserved
)

// Grid is the seat matrix for one show plus the session-local selection
// set.  Selection order is preserved so summaries like "A1, A2, C5"
// come out deterministically.
type Grid struct {
    rows     int
    cols     int
    reserved map[model.SeatRef]bool
    selected []model.SeatRef
}

// New creates a grid with the given dimensions.  Dimensions come from
// the show's catalog row and are at least 1x1; row count must stay
// within a single-letter alphabet for seat naming.
func New(rows, cols int) (*Grid, error) {
    if rows < 1 || cols < 1 {
        return nil, fmt.Errorf("seatmap: invalid grid dimensions %dx%d", rows, cols)
    }
    if rows > 26 {
        return nil, fmt.Errorf("seatmap: %d rows exceeds single-letter row naming", rows)
    }
    return &Grid{
        rows:     rows,
        cols:     cols,
        reserved: make(map[model.SeatRef]bool),
    }, nil
}

// Rows returns the number of seat rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of seat columns.
func (g *Grid) Cols() int { return g.cols }

// Reset clears the selection set and replaces the reserved set with the
// given occupancy.  It is called on first load, after a successful
// commit and after a conflict so the grid reflects true availability.
// Coordinates outside the grid are ignored, matching how the display
// layer drops stray rows.
func (g *Grid) Reset(occupied []model.SeatRef) {
    g.selected = nil
    g.reserved = make(map[model.SeatRef]bool, len(occupied))
    for _, s := range occupied {
        if g.inBounds(s.Row, s.Col) {
            g.reserved[s] = true
        }
    }
}

// ClearSelection drops the selection set without touching the reserved
// set.  Used when a refresh of occupancy is not possible but a stale
// selection must not survive.
func (g *Grid) ClearSelection() {
    g.selected = nil
}

// Toggle flips membership of the seat in the selection set.  Toggling a
// reserved seat has no effect; toggling outside the grid returns
// ErrInvalidCoordinate.  Toggling the same coordinate twice restores
// the prior selection state.
func (g *Grid) Toggle(row, col int) error {
    if !g.inBounds(row, col) {
        return ErrInvalidCoordinate
    }
    seat := model.SeatRef{Row: row, Col: col}
    if g.reserved[seat] {
        return nil
    }
    for i, s := range g.selected {
        if s == seat {
            g.selected = append(g.selected[:i], g.selected[i+1:]...)
            return nil
        }
    }
    g.selected = append(g.selected, seat)
    return nil
}

// Selected returns the selection set in selection order.  The returned
// slice is a copy; mutating it does not affect the grid.
func (g *Grid) Selected() []model.SeatRef {
    out := make([]model.SeatRef, len(g.selected))
    copy(out, g.selected)
    return out
}

// State reports the current state of one seat.  Out-of-range
// coordinates return Available plus ErrInvalidCoordinate.
func (g *Grid) State(row, col int) (SeatState, error) {
    if !g.inBounds(row, col) {
        return Available, ErrInvalidCoordinate
    }
    seat := model.SeatRef{Row: row, Col: col}
    if g.reserved[seat] {
        return Reserved, nil
    }
    for _, s := range g.selected {
        if s == seat {
            return Selected, nil
        }
    }
    return Available, nil
}

// Total returns the price of the current selection: selected seat count
// times the per-seat price in cents.
func (g *Grid) Total(unitPriceCents uint32) uint32 {
    return uint32(len(g.selected)) * unitPriceCents
}

// SelectedNames returns display names for the selection in selection
// order, e.g. ["A1", "A2", "C5"].
func (g *Grid) SelectedNames() []string {
    names := make([]string, len(g.selected))
    for i, s := range g.selected {
        names[i] = SeatName(s.Row, s.Col)
    }
    return names
}

// SeatName derives the display name of a seat: row index as a letter
// starting at 'A' and a 1-based column number, so row 2, col 4 is "C5".
func SeatName(row, col int) string {
    return fmt.Sprintf("%c%d", 'A'+rune(row), col+1)
}

func (g *Grid) inBounds(row, col int) bool {
    return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}
