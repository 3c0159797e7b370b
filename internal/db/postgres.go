package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"skyshield/bastion/internal/logging"
)

var DB *sqlx.DB

const connectAttempts = 10

// InitPostgres connects the shared sqlx pool, retrying briefly so the
// server survives a database that comes up a moment later.
func InitPostgres(dsn string) error {
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		logging.Warn("Postgres not ready, retrying",
			"attempt", attempt,
			"error", err.Error(),
		)
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("connect to postgres after %d attempts: %w", connectAttempts, err)
}
