package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

type PoolOptions struct {
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

func Connect(connStr string, opts PoolOptions) error {
	if connStr == "" {
		return fmt.Errorf("empty database connection string")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(opts.MaxOpenConns)
	DB.SetMaxIdleConns(opts.MaxOpenConns)
	DB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	return DB.Ping()
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
