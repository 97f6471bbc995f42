package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/avelldro/cinema-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to the booking API
// on the provided Echo instance.  Currently it exposes only a health
// check that load balancers and monitoring systems can probe.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the public show catalog endpoints.  The
// optional cache middleware is applied to the immutable catalog reads
// only; seat availability is always served fresh from the database so a
// reload genuinely reflects current occupancy.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
    if cache != nil {
        e.GET("/v1/shows", h.ListShows, cache)
        e.GET("/v1/shows/lookup", h.GetShow, cache)
        e.GET("/v1/shows/:id", h.GetShow, cache)
    } else {
        e.GET("/v1/shows", h.ListShows)
        e.GET("/v1/shows/lookup", h.GetShow)
        e.GET("/v1/shows/:id", h.GetShow)
    }
    e.GET("/v1/shows/:id/seats", h.GetShowSeats)
}

// RegisterTickets registers queue ticket issuance and holder lookups.
func RegisterTickets(e *echo.Echo, h *handler.TicketHandler) {
    e.POST("/v1/tickets", h.IssueTicket)
    e.GET("/v1/tickets/:id", h.GetTicket)
    e.GET("/v1/tickets/:id/reservations", h.ListTicketReservations)
}

// RegisterBooking registers the reservation commit endpoint.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler) {
    e.POST("/v1/shows/:id/reservations", h.CreateReservation)
}
