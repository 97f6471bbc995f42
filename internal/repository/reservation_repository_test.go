package repository

import (
    "context"
    "encoding/json"
    "errors"
    "testing"
    "time"

    "github.com/avelldro/cinema-booking/internal/model"
)

// An empty commit must be rejected before the repo touches the
// database, so a nil handle is safe here: reaching BeginTx on a nil DB
// would panic and fail the test.
func TestCommitRejectsEmptySeatList(t *testing.T) {
    t.Parallel()

    repo := NewReservationRepo(nil)
    err := repo.Commit(context.Background(), 1, 1, nil)
    if !errors.Is(err, ErrNoSeats) {
        t.Errorf("Commit with no seats: got %v, want %v", err, ErrNoSeats)
    }
    err = repo.Commit(context.Background(), 1, 1, []model.SeatRef{})
    if !errors.Is(err, ErrNoSeats) {
        t.Errorf("Commit with empty slice: got %v, want %v", err, ErrNoSeats)
    }
}

// HolderReservation embeds model.Reservation; the reservation fields
// must stay addressable through the wrapper and flatten into a single
// JSON object alongside the show fields.
func TestHolderReservationPromotesReservationFields(t *testing.T) {
    t.Parallel()

    h := HolderReservation{
        Reservation: model.Reservation{
            ID:        7,
            ShowID:    3,
            HolderID:  12,
            Row:       1,
            Col:       4,
            CreatedAt: time.Date(2026, time.March, 14, 15, 0, 0, 0, time.UTC),
        },
        ShowTitle:  "Star Wars",
        ShowTime:   "4:00 PM",
        PriceCents: 35000,
    }
    if h.ID != 7 || h.ShowID != 3 || h.Row != 1 || h.Col != 4 {
        t.Fatalf("promoted fields: got id=%d show=%d row=%d col=%d", h.ID, h.ShowID, h.Row, h.Col)
    }

    raw, err := json.Marshal(h)
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    var flat map[string]any
    if err := json.Unmarshal(raw, &flat); err != nil {
        t.Fatalf("unmarshal: %v", err)
    }
    for _, key := range []string{"id", "show_id", "holder_id", "row", "col", "created_at", "show_title", "show_time", "price_cents"} {
        if _, ok := flat[key]; !ok {
            t.Errorf("marshalled HolderReservation missing %q key", key)
        }
    }
    if _, ok := flat["Reservation"]; ok {
        t.Errorf("embedded reservation was nested instead of flattened")
    }
}
