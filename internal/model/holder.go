package model

// Holder is the customer session a queue ticket and any reservations are
// attributed to.  A holder is created once when a ticket is issued and is
// never updated or deleted afterwards.
//
// Fields:
//  ID         – primary key identifier.
//  TicketCode – externally visible queue code such as "A17".  Codes are
//               unique and their integer suffixes are monotonic.
type Holder struct {
    ID         uint64 `json:"id"`          // holders.id
    TicketCode string `json:"ticket_code"` // holders.ticket_code
}
