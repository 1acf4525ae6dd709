package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// sqliteSchema mirrors database/schema.sql in the SQLite dialect.
const sqliteSchema = `
CREATE TABLE members (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT     NOT NULL,
    email         TEXT     NOT NULL UNIQUE,
    password_hash TEXT     NOT NULL,
    role          TEXT     NOT NULL DEFAULT 'MEMBER',
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE themes (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    thumbnail   TEXT NOT NULL DEFAULT ''
);
CREATE TABLE reservation_times (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    start_at TIME NOT NULL UNIQUE
);
CREATE TABLE reservations (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    member_id  INTEGER  NOT NULL REFERENCES members (id),
    date       DATE     NOT NULL,
    time_id    INTEGER  NOT NULL REFERENCES reservation_times (id),
    theme_id   INTEGER  NOT NULL REFERENCES themes (id),
    status     TEXT     NOT NULL DEFAULT 'RESERVED',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (date, time_id, theme_id)
);`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "roomescape.db")
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// a single connection keeps SQLite predictable in tests
	db.SetMaxOpenConns(1)

	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)
	return db
}

type fixture struct {
	members      *MemberRepo
	themes       *ThemeRepo
	times        *TimeRepo
	reservations *ReservationRepo
}

func newFixture(t *testing.T) fixture {
	db := newTestDB(t)
	return fixture{
		members:      NewMemberRepo(db),
		themes:       NewThemeRepo(db),
		times:        NewTimeRepo(db),
		reservations: NewReservationRepo(db),
	}
}

func (f fixture) member(t *testing.T, name, email string) model.Member {
	t.Helper()
	m := model.Member{Name: name, Email: email, PasswordHash: "hash"}
	require.NoError(t, f.members.Create(context.Background(), &m))
	return m
}

func (f fixture) theme(t *testing.T, name string) model.Theme {
	t.Helper()
	th := model.Theme{Name: name, Description: name + " 설명", Thumbnail: "https://example.com/" + name + ".png"}
	require.NoError(t, f.themes.Create(context.Background(), &th))
	return th
}

func (f fixture) time(t *testing.T, hhmm string) model.ReservationTime {
	t.Helper()
	c, err := model.ParseClock(hhmm)
	require.NoError(t, err)
	rt := model.ReservationTime{StartAt: c}
	require.NoError(t, f.times.Create(context.Background(), &rt))
	return rt
}

func (f fixture) reserve(t *testing.T, m model.Member, date string, rt model.ReservationTime, th model.Theme) model.Reservation {
	t.Helper()
	d, err := model.ParseDate(date)
	require.NoError(t, err)
	res := model.Reservation{Member: m, Date: d, Time: rt, Theme: th}
	require.NoError(t, f.reservations.Create(context.Background(), &res))
	return res
}
