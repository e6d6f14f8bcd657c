package db

import (
	"database/sql"
	"fmt"

	"vesture-be/internal/config"

	_ "github.com/lib/pq"
)

// Connect opens the postgres pool and verifies it with a ping. The caller
// decides what to do when the probe fails (the server falls back to the
// file store instead of exiting).
func Connect(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
