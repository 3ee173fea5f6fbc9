//go:build !cgo
// +build !cgo

package gpsdb

import (
	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered for SQLite in this build.
const DriverName = "sqlite"

// Open connects to a SQLite database file read-only, using the pure-Go driver
// when cgo is unavailable.
func Open(path string) (*sqlx.DB, error) {
	return sqlx.Connect(DriverName, readOnlyURI(path))
}
