package database

import (
	"fmt"
	"net/url"
	"portfolio/config"
	"strings"
)

var (
	journalModes = map[string]bool{"WAL": true, "DELETE": true, "TRUNCATE": true, "PERSIST": true, "MEMORY": true, "OFF": true}
	syncModes    = map[string]bool{"OFF": true, "NORMAL": true, "FULL": true, "EXTRA": true, "0": true, "1": true, "2": true, "3": true}
)

// sqlitePragmas is the validated subset of SQLite PRAGMAs we manage.
// Empty string fields are left at the SQLite default.
type sqlitePragmas struct {
	busyTimeoutMS int
	journalMode   string
	synchronous   string
	foreignKeys   bool
}

func sqlitePragmasFrom(settings *config.Config) sqlitePragmas {
	p := sqlitePragmas{foreignKeys: settings.SQLiteForeignKeys}
	if settings.SQLiteBusyTimeoutMS > 0 {
		p.busyTimeoutMS = settings.SQLiteBusyTimeoutMS
	}
	if mode := strings.ToUpper(strings.TrimSpace(settings.SQLiteJournalMode)); journalModes[mode] {
		p.journalMode = mode
	}
	if mode := strings.ToUpper(strings.TrimSpace(settings.SQLiteSynchronous)); syncModes[mode] {
		p.synchronous = mode
	}
	return p
}

func (p sqlitePragmas) pairs() [][2]string {
	var out [][2]string
	if p.busyTimeoutMS > 0 {
		out = append(out, [2]string{"busy_timeout", fmt.Sprint(p.busyTimeoutMS)})
	}
	if p.journalMode != "" {
		out = append(out, [2]string{"journal_mode", p.journalMode})
	}
	if p.synchronous != "" {
		out = append(out, [2]string{"synchronous", p.synchronous})
	}
	fk := "0"
	if p.foreignKeys {
		fk = "1"
	}
	return append(out, [2]string{"foreign_keys", fk})
}

// dsn appends the PRAGMAs as _pragma query parameters so that every new pooled
// connection gets them. Existing query parameters are preserved.
func (p sqlitePragmas) dsn(path string) string {
	base, rawQuery, _ := strings.Cut(path, "?")
	query, _ := url.ParseQuery(rawQuery)
	for _, kv := range p.pairs() {
		query.Add("_pragma", fmt.Sprintf("%s(%s)", kv[0], kv[1]))
	}
	return base + "?" + query.Encode()
}

// sqliteDSN is the connection string for settings.DatabaseURL, carrying the
// PRAGMAs only when they are enabled.
func sqliteDSN(settings *config.Config) string {
	if !settings.SQLitePragmasEnabled {
		return settings.DatabaseURL
	}
	return sqlitePragmasFrom(settings).dsn(settings.DatabaseURL)
}

// statements renders the PRAGMAs as SQL for a one-off apply on startup.
func (p sqlitePragmas) statements() []string {
	pairs := p.pairs()
	out := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		out = append(out, fmt.Sprintf("PRAGMA %s = %s", kv[0], kv[1]))
	}
	return out
}

type poolConfig struct {
	maxOpenConns int
	maxIdleConns int
	maxIdleSec   int
	maxLifeSec   int
}

// poolConfigFrom reads the pool knobs for the configured driver and clamps
// them: at least one open connection, idle connections within [0, open],
// non-negative durations. The idle/lifetime durations are shared by both drivers.
func poolConfigFrom(settings *config.Config) poolConfig {
	open, idle := settings.SQLiteMaxOpenConns, settings.SQLiteMaxIdleConns
	if driverName(settings) == DriverPostgres {
		open, idle = settings.PostgresMaxOpenConns, settings.PostgresMaxIdleConns
	}

	cfg := poolConfig{
		maxOpenConns: max(open, 1),
		maxIdleConns: max(idle, 0),
		maxIdleSec:   max(settings.SQLiteConnMaxIdleSec, 0),
		maxLifeSec:   max(settings.SQLiteConnMaxLifeSec, 0),
	}
	cfg.maxIdleConns = min(cfg.maxIdleConns, cfg.maxOpenConns)
	return cfg
}
