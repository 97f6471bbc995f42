package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/avelldro/cinema-booking/internal/booking"
    "github.com/avelldro/cinema-booking/internal/repository"
    "github.com/avelldro/cinema-booking/internal/seatmap"
    queue_publisher "github.com/avelldro/cinema-booking/internal/service"
    "github.com/labstack/echo/v4"
)

// BookingHandler turns a commit request into one booking session run:
// load status, apply the customer's selection to a fresh grid, commit
// atomically and map the outcome to a response.  The selection set
// itself lives in the client between requests; the server never holds
// cross-request session state, so any number of concurrent customers
// can book against the same store.
type BookingHandler struct {
    ShowRepo        *repository.ShowRepo
    HolderRepo      *repository.HolderRepo
    ReservationRepo *repository.ReservationRepo
}

// NewBookingHandler constructs a BookingHandler.  All dependencies must
// be non-nil.
func NewBookingHandler(showRepo *repository.ShowRepo, holderRepo *repository.HolderRepo, reservationRepo *repository.ReservationRepo) *BookingHandler {
    if showRepo == nil || holderRepo == nil || reservationRepo == nil {
        panic("nil repository passed to NewBookingHandler")
    }
    return &BookingHandler{ShowRepo: showRepo, HolderRepo: holderRepo, ReservationRepo: reservationRepo}
}

// CreateReservation handles POST /v1/shows/:id/reservations.  The body
// carries the holder and the selected seats:
//
//	{"holder_id": 3, "seats": [{"row":0,"col":0},{"row":0,"col":1}]}
//
// Responses: 201 with the booking summary on success; 400 for empty or
// out-of-range selections; 404 for unknown shows or holders; 409 when
// at least one seat was already reserved (the client should reload seat
// status and let the customer pick again); 500 for other storage
// failures, after which retrying with the same selection is safe.
func (h *BookingHandler) CreateReservation(c echo.Context) error {
    showID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || showID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
    }
    var body struct {
        HolderID uint64 `json:"holder_id"`
        Seats    []struct {
            Row int `json:"row"`
            Col int `json:"col"`
        } `json:"seats"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.HolderID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "holder_id is required"})
    }
    // deduplicate seats so a repeated coordinate cannot toggle itself
    // back out of the selection
    type coord struct{ Row, Col int }
    seen := make(map[coord]struct{})
    seats := body.Seats[:0]
    for _, s := range body.Seats {
        key := coord{s.Row, s.Col}
        if _, ok := seen[key]; !ok {
            seen[key] = struct{}{}
            seats = append(seats, s)
        }
    }
    body.Seats = seats
    ctx := c.Request().Context()
    show, err := h.ShowRepo.GetByID(ctx, showID)
    if err != nil {
        if errors.Is(err, repository.ErrShowNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    holder, err := h.HolderRepo.GetByID(ctx, body.HolderID)
    if err != nil {
        if errors.Is(err, repository.ErrHolderNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "holder not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    session := booking.NewSession(holder, h.ReservationRepo, queue_publisher.PublishBookingConfirmed)
    if err := session.EnterShow(ctx, show); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seat status"})
    }
    for _, s := range body.Seats {
        if err := session.Toggle(s.Row, s.Col); err != nil {
            if errors.Is(err, seatmap.ErrInvalidCoordinate) {
                return c.JSON(http.StatusBadRequest, echo.Map{
                    "error": "seat coordinate out of range",
                    "seat":  echo.Map{"row": s.Row, "col": s.Col},
                })
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to apply selection"})
        }
    }
    // Seats already reserved at load time are no-ops for Toggle, so a
    // shrunken selection means the client worked from stale status.
    // Report it as the conflict it is instead of booking a subset.
    if len(session.Selection()) != len(body.Seats) {
        return c.JSON(http.StatusConflict, echo.Map{"error": "some seats are already reserved"})
    }

    summary, err := session.Commit(ctx)
    if err != nil {
        switch {
        case errors.Is(err, booking.ErrEmptySelection):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seats selected"})
        case errors.Is(err, repository.ErrSeatTaken):
            return c.JSON(http.StatusConflict, echo.Map{"error": "one or more seats were just taken"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
        }
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "ticket_code": summary.TicketCode,
        "show_title":  summary.ShowTitle,
        "show_time":   summary.ShowTime,
        "seats":       summary.SeatNames,
        "total_cents": summary.TotalCents,
    })
}
