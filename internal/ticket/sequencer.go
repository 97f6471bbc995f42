// Package ticket issues queue ticket codes to walk-up customers.  Codes
// follow <prefix><integer> with integer suffixes starting at 1.  The
// next suffix is always recomputed from the durable holder history so
// sequencing survives process restarts, and duplicate codes produced by
// two sessions issuing at the same moment are resolved by the storage
// layer's uniqueness constraint plus a recompute-and-retry loop here.
package ticket

import (
    "context"
    "errors"
    "fmt"

    "github.com/avelldro/cinema-booking/internal/model"
    "github.com/avelldro/cinema-booking/internal/repository"
)

// maxAttempts bounds the retry loop under pathological contention.
const maxAttempts = 5

// HolderStore is the slice of holder persistence the sequencer needs.
// *repository.HolderRepo satisfies it.
type HolderStore interface {
    MaxTicketNumber(ctx context.Context, prefix string) (uint64, error)
    Create(ctx context.Context, h *model.Holder) error
}

// Sequencer derives the next queue ticket identifier from stored
// history and persists the new holder record.
type Sequencer struct {
    store  HolderStore
    prefix string
}

// NewSequencer constructs a Sequencer issuing codes with the given
// prefix (e.g. "A" yields A1, A2, ...).
func NewSequencer(store HolderStore, prefix string) *Sequencer {
    return &Sequencer{store: store, prefix: prefix}
}

// Issue computes the next ticket code, persists a holder bound to it
// and returns the holder.  On a duplicate-code conflict it recomputes
// the maximum from history and retries; after maxAttempts consecutive
// conflicts the last error is returned.
func (s *Sequencer) Issue(ctx context.Context) (*model.Holder, error) {
    var lastErr error
    for attempt := 0; attempt < maxAttempts; attempt++ {
        max, err := s.store.MaxTicketNumber(ctx, s.prefix)
        if err != nil {
            return nil, err
        }
        h := &model.Holder{TicketCode: fmt.Sprintf("%s%d", s.prefix, max+1)}
        err = s.store.Create(ctx, h)
        if err == nil {
            return h, nil
        }
        if !errors.Is(err, repository.ErrTicketCodeTaken) {
            return nil, err
        }
        lastErr = err
    }
    return nil, fmt.Errorf("ticket: issuing gave up after %d conflicts: %w", maxAttempts, lastErr)
}
