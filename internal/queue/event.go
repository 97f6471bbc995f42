// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a seat reservation commit
// succeeds.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingConfirmedEvent struct {
    HolderID    uint64   `json:"holder_id"`
    TicketCode  string   `json:"ticket_code"`
    ShowID      uint64   `json:"show_id"`
    ShowTitle   string   `json:"show_title"`
    ShowTime    string   `json:"show_time"`
    SeatNames   []string `json:"seats"`
    TotalCents  uint32   `json:"total_cents"`
    ConfirmedAt string   `json:"confirmed_at"`
}
