package main // Entry point package

import (
    "context"
    "log"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/avelldro/cinema-booking/internal/config"
    "github.com/avelldro/cinema-booking/internal/database"
    "github.com/avelldro/cinema-booking/internal/handler"
    "github.com/avelldro/cinema-booking/internal/middleware"
    "github.com/avelldro/cinema-booking/internal/queue"
    "github.com/avelldro/cinema-booking/internal/repository"
    "github.com/avelldro/cinema-booking/internal/router"
    "github.com/avelldro/cinema-booking/internal/ticket"
)

func main() {
    // Load .env when present; real deployments set the environment directly.
    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database open: %v", err)
    }
    defer db.Close()

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    if err := database.EnsureSchema(ctx, db); err != nil {
        cancel()
        log.Fatalf("database schema: %v", err)
    }
    cancel()

    showRepo := repository.NewShowRepo(db)
    holderRepo := repository.NewHolderRepo(db)
    reservationRepo := repository.NewReservationRepo(db)
    sequencer := ticket.NewSequencer(holderRepo, cfg.TicketPrefix)

    catalogHandler := handler.NewCatalogHandler(showRepo, reservationRepo)
    ticketHandler := handler.NewTicketHandler(sequencer, holderRepo, reservationRepo)
    bookingHandler := handler.NewBookingHandler(showRepo, holderRepo, reservationRepo)

    // Redis is optional: a nil client disables catalog caching.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Printf("redis unavailable; catalog caching disabled")
    }
    cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterCatalog(e, catalogHandler, cacheMW)
    router.RegisterTickets(e, ticketHandler)
    router.RegisterBooking(e, bookingHandler)

    // Background consumer appends confirmed bookings to logs/booking.log.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
