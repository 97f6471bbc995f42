package ticket

import (
    "context"
    "errors"
    "fmt"
    "sync"
    "testing"

    "github.com/avelldro/cinema-booking/internal/model"
    "github.com/avelldro/cinema-booking/internal/repository"
)

// fakeHolderStore is an in-memory HolderStore enforcing ticket code
// uniqueness the way the database constraint does.
type fakeHolderStore struct {
    mu     sync.Mutex
    nextID uint64
    codes  map[string]uint64

    maxErr    error // forced error from MaxTicketNumber
    createErr error // forced error from Create
}

func newFakeHolderStore() *fakeHolderStore {
    return &fakeHolderStore{codes: make(map[string]uint64)}
}

func (f *fakeHolderStore) MaxTicketNumber(ctx context.Context, prefix string) (uint64, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.maxErr != nil {
        return 0, f.maxErr
    }
    var max uint64
    for code := range f.codes {
        var n uint64
        if _, err := fmt.Sscanf(code[len(prefix):], "%d", &n); err == nil && n > max {
            max = n
        }
    }
    return max, nil
}

func (f *fakeHolderStore) Create(ctx context.Context, h *model.Holder) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.createErr != nil {
        return f.createErr
    }
    if _, exists := f.codes[h.TicketCode]; exists {
        return repository.ErrTicketCodeTaken
    }
    f.nextID++
    f.codes[h.TicketCode] = f.nextID
    h.ID = f.nextID
    return nil
}

func TestIssueSequentialCodesStartAtOne(t *testing.T) {
    t.Parallel()
    store := newFakeHolderStore()
    seq := NewSequencer(store, "A")

    for i := 1; i <= 5; i++ {
        h, err := seq.Issue(context.Background())
        if err != nil {
            t.Fatalf("Issue #%d: %v", i, err)
        }
        want := fmt.Sprintf("A%d", i)
        if h.TicketCode != want {
            t.Errorf("Issue #%d: got code %q, want %q", i, h.TicketCode, want)
        }
        if h.ID == 0 {
            t.Errorf("Issue #%d: holder ID not populated", i)
        }
    }
}

func TestIssueResumesFromDurableHistory(t *testing.T) {
    t.Parallel()
    store := newFakeHolderStore()
    store.codes["A41"] = 1
    store.nextID = 1

    seq := NewSequencer(store, "A")
    h, err := seq.Issue(context.Background())
    if err != nil {
        t.Fatalf("Issue: %v", err)
    }
    if h.TicketCode != "A42" {
        t.Errorf("Issue after existing A41: got %q, want %q", h.TicketCode, "A42")
    }
}

func TestIssueRetriesOnDuplicateCode(t *testing.T) {
    t.Parallel()
    store := newFakeHolderStore()
    seq := NewSequencer(store, "A")

    // Simulate a racing session grabbing A1 between our max read and
    // insert: preload A1 so the first computed code collides.
    store.codes["A1"] = 99
    store.nextID = 99

    h, err := seq.Issue(context.Background())
    if err != nil {
        t.Fatalf("Issue: %v", err)
    }
    if h.TicketCode != "A2" {
        t.Errorf("Issue after conflict on A1: got %q, want %q", h.TicketCode, "A2")
    }
}

func TestIssueConcurrentSessionsNeverDuplicate(t *testing.T) {
    t.Parallel()
    store := newFakeHolderStore()
    seq := NewSequencer(store, "A")

    const n = 20
    var wg sync.WaitGroup
    codes := make(chan string, n)
    errs := make(chan error, n)
    for i := 0; i < n; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            h, err := seq.Issue(context.Background())
            if err != nil {
                errs <- err
                return
            }
            codes <- h.TicketCode
        }()
    }
    wg.Wait()
    close(codes)
    close(errs)

    // Under heavy artificial contention some issuances may exhaust
    // their retries; the ones that succeed must all be distinct.
    seen := make(map[string]bool)
    for code := range codes {
        if seen[code] {
            t.Errorf("duplicate ticket code issued: %q", code)
        }
        seen[code] = true
    }
    for err := range errs {
        if !errors.Is(err, repository.ErrTicketCodeTaken) {
            t.Errorf("unexpected issue error: %v", err)
        }
    }
}

func TestIssuePropagatesStoreErrors(t *testing.T) {
    t.Parallel()
    boom := errors.New("connection lost")

    store := newFakeHolderStore()
    store.maxErr = boom
    if _, err := NewSequencer(store, "A").Issue(context.Background()); !errors.Is(err, boom) {
        t.Errorf("Issue with failing max read: got %v, want %v", err, boom)
    }

    store = newFakeHolderStore()
    store.createErr = boom
    if _, err := NewSequencer(store, "A").Issue(context.Background()); !errors.Is(err, boom) {
        t.Errorf("Issue with failing insert: got %v, want %v", err, boom)
    }
}

func TestIssueGivesUpAfterRepeatedConflicts(t *testing.T) {
    t.Parallel()
    store := newFakeHolderStore()
    store.createErr = repository.ErrTicketCodeTaken

    _, err := NewSequencer(store, "A").Issue(context.Background())
    if err == nil {
        t.Fatal("Issue with permanent conflicts: expected error, got nil")
    }
    if !errors.Is(err, repository.ErrTicketCodeTaken) {
        t.Errorf("Issue give-up error should wrap the conflict: %v", err)
    }
}
