package model

import "time"

// Reservation binds one seat of a show to a holder.  Rows are append-only:
// they are created inside the ledger's commit transaction and never updated
// or deleted, so a seat stays reserved for the lifetime of the database.
//
// Fields:
//  ID        – primary key identifier.
//  ShowID    – show the seat belongs to.
//  HolderID  – holder the seat was booked for.
//  Row, Col  – zero-based grid coordinates.  UNIQUE(show_id, row_idx,
//              col_idx) in the schema guarantees at most one holder per
//              seat, even under concurrent commits.
//  CreatedAt – creation timestamp.
type Reservation struct {
    ID        uint64    `json:"id"`         // reservations.id
    ShowID    uint64    `json:"show_id"`    // reservations.show_id
    HolderID  uint64    `json:"holder_id"`  // reservations.holder_id
    Row       int       `json:"row"`        // reservations.row_idx
    Col       int       `json:"col"`        // reservations.col_idx
    CreatedAt time.Time `json:"created_at"` // reservations.created_at
}
