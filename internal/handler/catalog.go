package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/avelldro/cinema-booking/internal/repository"
    "github.com/avelldro/cinema-booking/internal/seatmap"
    "github.com/labstack/echo/v4"
)

// CatalogHandler serves the read-only show catalog and per-show seat
// availability.  No authentication applies; walk-up customers browse
// these endpoints before claiming a ticket.
type CatalogHandler struct {
    ShowRepo        *repository.ShowRepo
    ReservationRepo *repository.ReservationRepo
}

// NewCatalogHandler constructs a CatalogHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewCatalogHandler(showRepo *repository.ShowRepo, reservationRepo *repository.ReservationRepo) *CatalogHandler {
    if showRepo == nil || reservationRepo == nil {
        panic("nil repository passed to NewCatalogHandler")
    }
    return &CatalogHandler{ShowRepo: showRepo, ReservationRepo: reservationRepo}
}

// ListShows handles GET /v1/shows.  It returns every show ordered by
// title then time, the stable ordering the selection screens rely on.
func (h *CatalogHandler) ListShows(c echo.Context) error {
    shows, err := h.ShowRepo.ListShows(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load shows"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": shows})
}

// GetShow handles GET /v1/shows/:id and the composite lookup
// GET /v1/shows/lookup?title=...&time=... used by the selection screen.
// It responds 404 when no show matches.
func (h *CatalogHandler) GetShow(c echo.Context) error {
    ctx := c.Request().Context()
    // Composite lookup via query parameters takes precedence so the
    // selection screen can resolve "title @ time" directly.
    if title := c.QueryParam("title"); title != "" {
        showTime := c.QueryParam("time")
        show, err := h.ShowRepo.GetByTitleAndTime(ctx, title, showTime)
        if err != nil {
            if errors.Is(err, repository.ErrShowNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        return c.JSON(http.StatusOK, echo.Map{"item": show})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
    }
    show, err := h.ShowRepo.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrShowNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": show})
}

// GetShowSeats handles GET /v1/shows/:id/seats.  It returns the show's
// grid dimensions and the currently reserved seats with display names.
// Availability is only as fresh as this read; a commit re-validates
// against the database constraint regardless.
func (h *CatalogHandler) GetShowSeats(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
    }
    ctx := c.Request().Context()
    show, err := h.ShowRepo.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrShowNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    occupied, err := h.ReservationRepo.StatusFor(ctx, show.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seat status"})
    }
    type reservedSeat struct {
        Row  int    `json:"row"`
        Col  int    `json:"col"`
        Name string `json:"name"`
    }
    reserved := make([]reservedSeat, 0, len(occupied))
    for _, s := range occupied {
        reserved = append(reserved, reservedSeat{Row: s.Row, Col: s.Col, Name: seatmap.SeatName(s.Row, s.Col)})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "show_id":  show.ID,
        "rows":     show.Rows,
        "cols":     show.Cols,
        "reserved": reserved,
    })
}
