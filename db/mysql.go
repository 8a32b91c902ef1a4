package db

import (
	"database/sql"
	"time"

	"tripx/config"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB *sql.DB // shared connection pool
)

// InitMySQL opens a connection pool for the given DSN.
func InitMySQL(dsn string) error {
	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	return DB.Ping()
}

// InitMySQLWithConfig opens the pool and applies tuning from config,
// with defaults when the values are unset.
func InitMySQLWithConfig(cfg *config.Config) error {
	var err error
	DB, err = sql.Open("mysql", cfg.DB.DSN)
	if err != nil {
		return err
	}

	maxOpenConns := cfg.DB.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 50
	}

	maxIdleConns := cfg.DB.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 10
	}

	connMaxLifetime := cfg.DB.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 60
	}

	DB.SetMaxOpenConns(maxOpenConns)
	DB.SetMaxIdleConns(maxIdleConns)
	DB.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

	return DB.Ping()
}
