// Package repository defines the persistence gateways over database/sql
// and the sentinel errors they return.  Higher layers translate these
// into domain errors; no SQL error leaks past a repository untranslated
// when it has a domain meaning.
package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a lookup by key finds no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique key, e.g.
// a second reservation for the same date, time and theme.
var ErrDuplicate = errors.New("duplicate")

// ErrInUse is returned when a delete is rejected because other rows
// still reference the target through a foreign key.
var ErrInUse = errors.New("in use")

// MySQL server error numbers.
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
)

// translate maps driver errors onto the package sentinels.  SQLite
// messages are matched textually so the same repositories run against
// the test database.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlDuplicateEntry:
			return ErrDuplicate
		case mysqlRowIsReferenced:
			return ErrInUse
		}
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicate
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrInUse
	}
	return err
}
