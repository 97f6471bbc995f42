package database

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    _ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
    auth := user
    if pass != "" {
        auth = fmt.Sprintf("%s:%s", user, pass)
    }
    // parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
    dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
        auth, host, port, name)

    db, err := sql.Open("mysql", dsn)
    if err != nil {
        return nil, err
    }

    // Pool settings
    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(30 * time.Minute)

    // Ping with timeout
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        return nil, err
    }
    return db, nil
}

// EnsureSchema creates the application's tables when they do not exist.
// The UNIQUE keys are load-bearing: holders.ticket_code arbitrates
// concurrent ticket issuance and the (show_id, row_idx, col_idx) key on
// reservations is the final word on seat uniqueness under contention.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
    stmts := []string{
        `CREATE TABLE IF NOT EXISTS holders (
            id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
            ticket_code VARCHAR(16)     NOT NULL,
            created_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (id),
            UNIQUE KEY uq_holders_ticket_code (ticket_code)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
        `CREATE TABLE IF NOT EXISTS shows (
            id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
            title       VARCHAR(255)    NOT NULL,
            show_time   VARCHAR(32)     NOT NULL,
            price_cents INT UNSIGNED    NOT NULL,
            layout_rows INT             NOT NULL,
            layout_cols INT             NOT NULL,
            PRIMARY KEY (id),
            UNIQUE KEY uq_shows_title_time (title, show_time)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
        `CREATE TABLE IF NOT EXISTS reservations (
            id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
            show_id    BIGINT UNSIGNED NOT NULL,
            holder_id  BIGINT UNSIGNED NOT NULL,
            row_idx    INT             NOT NULL,
            col_idx    INT             NOT NULL,
            created_at DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (id),
            UNIQUE KEY uq_reservations_seat (show_id, row_idx, col_idx),
            CONSTRAINT fk_reservations_show   FOREIGN KEY (show_id)   REFERENCES shows (id),
            CONSTRAINT fk_reservations_holder FOREIGN KEY (holder_id) REFERENCES holders (id)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
    }
    for _, q := range stmts {
        if _, err := db.ExecContext(ctx, q); err != nil {
            return fmt.Errorf("ensure schema: %w", err)
        }
    }
    return nil
}
