// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// booking orchestrator to distinguish between different failure
// scenarios. ErrSeatTaken in particular is the conflict signal the
// whole reservation protocol is built around: it is produced when the
// database rejects an insert on the seat uniqueness constraint.
package repository

import (
    "errors"
    "strings"
)

// ErrShowNotFound indicates that no show matched the requested identity.
var ErrShowNotFound = errors.New("show not found")

// ErrHolderNotFound indicates that a holder lookup yielded no rows.
var ErrHolderNotFound = errors.New("holder not found")

// ErrTicketCodeTaken is returned when inserting a holder whose ticket
// code already exists. Two sessions issuing tickets at the same moment
// can both compute the same next code; the UNIQUE constraint on
// holders.ticket_code rejects the loser, which should recompute and
// retry.
var ErrTicketCodeTaken = errors.New("ticket code already taken")

// ErrNoSeats is returned when a reservation commit is attempted with an
// empty seat list. A commit must reserve at least one seat; an empty
// request reaching the ledger is a caller bug, not a successful no-op.
var ErrNoSeats = errors.New("no seats to reserve")

// ErrSeatTaken is returned when a reservation commit collides with an
// existing reservation for at least one requested seat. The entire
// commit has been rolled back when this error is returned; no partial
// booking is ever visible.
var ErrSeatTaken = errors.New("seat already reserved")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error code 1062), the signal that a UNIQUE constraint fired.
func isDuplicateKey(err error) bool {
    return err != nil && strings.Contains(err.Error(), "1062")
}
