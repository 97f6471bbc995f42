package main // Seeds the show catalog with the default movie lineup

import (
    "context"
    "log"
    "time"

    "github.com/joho/godotenv"

    "github.com/avelldro/cinema-booking/internal/config"
    "github.com/avelldro/cinema-booking/internal/database"
    "github.com/avelldro/cinema-booking/internal/model"
)

// seedShows is the default catalog.  Prices are in cents; each show
// carries its own grid dimensions.
var seedShows = []model.Show{
    {Title: "Avengers Endgame", ShowTime: "2:30 PM", PriceCents: 35000, Rows: 5, Cols: 10},
    {Title: "Avengers Endgame", ShowTime: "6:30 PM", PriceCents: 35000, Rows: 5, Cols: 10},
    {Title: "Star Wars: The Force Awakens", ShowTime: "4:00 PM", PriceCents: 35000, Rows: 6, Cols: 8},
    {Title: "Minecraft: The Movie", ShowTime: "1:00 PM", PriceCents: 35000, Rows: 4, Cols: 6},
}

func main() {
    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database open: %v", err)
    }
    defer db.Close()

    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := database.EnsureSchema(ctx, db); err != nil {
        log.Fatalf("database schema: %v", err)
    }

    // INSERT IGNORE keeps the seed idempotent: reruns skip rows whose
    // (title, show_time) pair already exists.
    const q = `INSERT IGNORE INTO shows (title, show_time, price_cents, layout_rows, layout_cols)
               VALUES (?, ?, ?, ?, ?)`
    inserted := 0
    for _, s := range seedShows {
        res, err := db.ExecContext(ctx, q, s.Title, s.ShowTime, s.PriceCents, s.Rows, s.Cols)
        if err != nil {
            log.Fatalf("seed show %q @ %q: %v", s.Title, s.ShowTime, err)
        }
        if n, err := res.RowsAffected(); err == nil {
            inserted += int(n)
        }
    }
    log.Printf("seed complete: %d of %d shows inserted", inserted, len(seedShows))
}
