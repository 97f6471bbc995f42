package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/avelldro/cinema-booking/internal/repository"
    "github.com/avelldro/cinema-booking/internal/ticket"
    "github.com/labstack/echo/v4"
)

// TicketHandler issues queue tickets and serves holder lookups.  A
// ticket is claimed once at the start of a customer session; the code
// printed on it is what the customer quotes at the counter.
type TicketHandler struct {
    Sequencer       *ticket.Sequencer
    HolderRepo      *repository.HolderRepo
    ReservationRepo *repository.ReservationRepo
}

// NewTicketHandler constructs a TicketHandler.  All dependencies must be
// non-nil.
func NewTicketHandler(seq *ticket.Sequencer, holderRepo *repository.HolderRepo, reservationRepo *repository.ReservationRepo) *TicketHandler {
    if seq == nil || holderRepo == nil || reservationRepo == nil {
        panic("nil dependency passed to NewTicketHandler")
    }
    return &TicketHandler{Sequencer: seq, HolderRepo: holderRepo, ReservationRepo: reservationRepo}
}

// IssueTicket handles POST /v1/tickets.  It derives the next queue code
// from stored history, persists the holder and returns both.  Duplicate
// codes produced by simultaneous issuance are retried inside the
// sequencer; a persistent failure surfaces as 500.
func (h *TicketHandler) IssueTicket(c echo.Context) error {
    holder, err := h.Sequencer.Issue(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue ticket"})
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "holder_id":   holder.ID,
        "ticket_code": holder.TicketCode,
    })
}

// GetTicket handles GET /v1/tickets/:id.  It re-displays a holder's
// queue code, responding 404 for unknown holders.
func (h *TicketHandler) GetTicket(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid holder id"})
    }
    holder, err := h.HolderRepo.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrHolderNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "holder not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": holder})
}

// ListTicketReservations handles GET /v1/tickets/:id/reservations.  It
// returns every seat the holder has committed, with show details, for a
// receipt view.  Unknown holders yield 404.
func (h *TicketHandler) ListTicketReservations(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid holder id"})
    }
    ctx := c.Request().Context()
    if _, err := h.HolderRepo.GetByID(ctx, id); err != nil {
        if errors.Is(err, repository.ErrHolderNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "holder not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    items, err := h.ReservationRepo.ListByHolder(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}
