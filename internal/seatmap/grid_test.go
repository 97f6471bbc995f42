package seatmap

import (
    "errors"
    "reflect"
    "testing"

    "github.com/avelldro/cinema-booking/internal/model"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
    t.Helper()
    g, err := New(rows, cols)
    if err != nil {
        t.Fatalf("New(%d, %d): %v", rows, cols, err)
    }
    return g
}

func TestNewRejectsBadDimensions(t *testing.T) {
    t.Parallel()
    cases := []struct {
        name       string
        rows, cols int
    }{
        {"zero rows", 0, 5},
        {"zero cols", 5, 0},
        {"negative rows", -1, 5},
        {"too many rows for letter naming", 27, 5},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if _, err := New(tc.rows, tc.cols); err == nil {
                t.Errorf("New(%d, %d): expected error, got nil", tc.rows, tc.cols)
            }
        })
    }
}

func TestToggleDoubleToggleRestoresPriorState(t *testing.T) {
    t.Parallel()
    g := mustGrid(t, 2, 2)

    if err := g.Toggle(0, 0); err != nil {
        t.Fatalf("Toggle(0,0): %v", err)
    }
    if err := g.Toggle(1, 1); err != nil {
        t.Fatalf("Toggle(1,1): %v", err)
    }
    before := g.Selected()

    if err := g.Toggle(0, 1); err != nil {
        t.Fatalf("Toggle(0,1): %v", err)
    }
    if err := g.Toggle(0, 1); err != nil {
        t.Fatalf("Toggle(0,1) again: %v", err)
    }

    after := g.Selected()
    if !reflect.DeepEqual(before, after) {
        t.Errorf("double toggle changed selection: before %v, after %v", before, after)
    }
}

func TestToggleOutOfRangeFailsLoudly(t *testing.T) {
    t.Parallel()
    g := mustGrid(t, 2, 2)

    cases := [][2]int{{5, 5}, {-1, 0}, {0, -1}, {2, 0}, {0, 2}}
    for _, c := range cases {
        if err := g.Toggle(c[0], c[1]); !errors.Is(err, ErrInvalidCoordinate) {
            t.Errorf("Toggle(%d,%d): got %v, want ErrInvalidCoordinate", c[0], c[1], err)
        }
    }
    if len(g.Selected()) != 0 {
        t.Errorf("failed toggles mutated selection: %v", g.Selected())
    }
}

func TestToggleReservedSeatIsNoOp(t *testing.T) {
    t.Parallel()
    g := mustGrid(t, 2, 2)
    g.Reset([]model.SeatRef{{Row: 0, Col: 0}})

    if err := g.Toggle(0, 0); err != nil {
        t.Fatalf("Toggle(0,0) on reserved seat: %v", err)
    }
    if len(g.Selected()) != 0 {
        t.Errorf("reserved seat entered selection: %v", g.Selected())
    }
    state, err := g.State(0, 0)
    if err != nil {
        t.Fatalf("State(0,0): %v", err)
    }
    if state != Reserved {
        t.Errorf("State(0,0): got %v, want Reserved", state)
    }
}

func TestSelectedPreservesSelectionOrder(t *testing.T) {
    t.Parallel()
    g := mustGrid(t, 3, 5)

    order := []model.SeatRef{{Row: 2, Col: 4}, {Row: 0, Col: 0}, {Row: 1, Col: 2}}
    for _, s := range order {
        if err := g.Toggle(s.Row, s.Col); err != nil {
            t.Fatalf("Toggle(%d,%d): %v", s.Row, s.Col, err)
        }
    }
    if got := g.Selected(); !reflect.DeepEqual(got, order) {
        t.Errorf("Selected(): got %v, want %v", got, order)
    }
    if got, want := g.SelectedNames(), []string{"C5", "A1", "B3"}; !reflect.DeepEqual(got, want) {
        t.Errorf("SelectedNames(): got %v, want %v", got, want)
    }

    // Deselecting the middle seat keeps the order of the rest.
    if err := g.Toggle(0, 0); err != nil {
        t.Fatalf("Toggle(0,0): %v", err)
    }
    want := []model.SeatRef{{Row: 2, Col: 4}, {Row: 1, Col: 2}}
    if got := g.Selected(); !reflect.DeepEqual(got, want) {
        t.Errorf("Selected() after deselect: got %v, want %v", got, want)
    }
}

func TestResetClearsSelectionAndSetsReserved(t *testing.T) {
    t.Parallel()
    g := mustGrid(t, 2, 2)

    if err := g.Toggle(0, 0); err != nil {
        t.Fatalf("Toggle(0,0): %v", err)
    }
    g.Reset([]model.SeatRef{{Row: 1, Col: 1}})

    if len(g.Selected()) != 0 {
        t.Errorf("Reset left selection: %v", g.Selected())
    }
    state, _ := g.State(1, 1)
    if state != Reserved {
        t.Errorf("State(1,1): got %v, want Reserved", state)
    }
    state, _ = g.State(0, 0)
    if state != Available {
        t.Errorf("State(0,0): got %v, want Available", state)
    }

    // Out-of-range occupancy rows are dropped, not an error.
    g.Reset([]model.SeatRef{{Row: 9, Col: 9}})
    for r := 0; r < 2; r++ {
        for c := 0; c < 2; c++ {
            if state, _ := g.State(r, c); state != Available {
                t.Errorf("State(%d,%d): got %v, want Available", r, c, state)
            }
        }
    }
}

func TestClearSelectionKeepsReserved(t *testing.T) {
    t.Parallel()
    g := mustGrid(t, 2, 2)
    g.Reset([]model.SeatRef{{Row: 0, Col: 1}})
    if err := g.Toggle(1, 0); err != nil {
        t.Fatalf("Toggle(1,0): %v", err)
    }

    g.ClearSelection()

    if len(g.Selected()) != 0 {
        t.Errorf("ClearSelection left selection: %v", g.Selected())
    }
    if state, _ := g.State(0, 1); state != Reserved {
        t.Errorf("State(0,1): got %v, want Reserved", state)
    }
}

func TestTotal(t *testing.T) {
    t.Parallel()
    g := mustGrid(t, 2, 2)

    if got := g.Total(100); got != 0 {
        t.Errorf("Total with empty selection: got %d, want 0", got)
    }
    _ = g.Toggle(0, 0)
    _ = g.Toggle(0, 1)
    if got := g.Total(100); got != 200 {
        t.Errorf("Total with two seats at 100: got %d, want 200", got)
    }
}

func TestSeatName(t *testing.T) {
    t.Parallel()
    cases := []struct {
        row, col int
        want     string
    }{
        {0, 0, "A1"},
        {2, 4, "C5"},
        {25, 9, "Z10"},
    }
    for _, tc := range cases {
        if got := SeatName(tc.row, tc.col); got != tc.want {
            t.Errorf("SeatName(%d,%d): got %q, want %q", tc.row, tc.col, got, tc.want)
        }
    }
}
