package model

// SeatRef identifies a single seat inside a show's grid by its zero-based
// row and column indices.  A seat is not a stored entity of its own; only
// a committed reservation materialises it in the database.
type SeatRef struct {
    Row int `json:"row"` // zero-based row index, rendered as a letter
    Col int `json:"col"` // zero-based column index, rendered 1-based
}
