//go:build cgo
// +build cgo

package gpsdb

import (
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered for SQLite in this build.
const DriverName = "sqlite3"

// Open connects to a SQLite database file read-only.
func Open(path string) (*sqlx.DB, error) {
	return sqlx.Connect(DriverName, readOnlyURI(path))
}
