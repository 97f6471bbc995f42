package model

// Show represents one screening of a movie at a fixed time slot.  Each
// show owns its own seat grid dimensions and a single per-seat price.
// Shows are immutable once seeded; the application only ever reads them.
//
// Fields:
//  ID         – primary key identifier.
//  Title      – movie title.
//  ShowTime   – human-readable time label (e.g. "2:30 PM").  Together
//               with Title it uniquely identifies the show.
//  PriceCents – price per seat in cents.
//  Rows       – number of seat rows in the grid (>= 1).
//  Cols       – number of seat columns in the grid (>= 1).
type Show struct {
    ID         uint64 `json:"id"`          // shows.id
    Title      string `json:"title"`       // shows.title
    ShowTime   string `json:"show_time"`   // shows.show_time
    PriceCents uint32 `json:"price_cents"` // shows.price_cents
    Rows       int    `json:"rows"`        // shows.layout_rows
    Cols       int    `json:"cols"`        // shows.layout_cols
}
