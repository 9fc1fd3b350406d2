package db

import (
	"database/sql"
	"fmt"
)

// schema holds one step per schema version: step i moves a database from
// PRAGMA user_version i to i+1. Steps are append-only.
var schema = [][]string{
	{
		`CREATE TABLE users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name     TEXT    NOT NULL,
			email         TEXT    NOT NULL UNIQUE,
			phone         TEXT    NOT NULL DEFAULT '',
			avatar        TEXT    NOT NULL DEFAULT '',
			password_hash TEXT    NOT NULL,
			created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE sessions (
			id         TEXT     PRIMARY KEY,
			email      TEXT     NOT NULL,
			expires_at DATETIME NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX sessions_expires_at ON sessions (expires_at)`,
		`CREATE TABLE listings (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          INTEGER NOT NULL UNIQUE,
			title       TEXT    NOT NULL,
			slug        TEXT    NOT NULL DEFAULT '',
			location    TEXT    NOT NULL,
			price       INTEGER NOT NULL,
			currency    TEXT    NOT NULL DEFAULT '',
			period      TEXT    NOT NULL DEFAULT '',
			bedrooms    TEXT    NOT NULL DEFAULT '',
			area        TEXT    NOT NULL DEFAULT '',
			type        TEXT    NOT NULL,
			city        TEXT    NOT NULL,
			image       TEXT    NOT NULL DEFAULT '',
			images_json TEXT    NOT NULL DEFAULT '[]',
			lat         REAL    NOT NULL DEFAULT 0,
			lng         REAL    NOT NULL DEFAULT 0,
			description TEXT    NOT NULL DEFAULT '',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE saved_listings (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			user_email  TEXT    NOT NULL,
			property_id INTEGER NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_email, property_id)
		)`,
	},
}

// SchemaVersion is the version Open migrates every database to.
func SchemaVersion() int {
	return len(schema)
}

// migrate applies the schema steps the database has not seen yet, each in
// its own transaction together with the version bump.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > len(schema) {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, len(schema))
	}

	for v := version; v < len(schema); v++ {
		if err := applyStep(db, v); err != nil {
			return fmt.Errorf("migrating to version %d: %w", v+1, err)
		}
	}
	return nil
}

func applyStep(db *sql.DB, v int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	for i, stmt := range schema[v] {
		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("setting schema version: %w", err)
	}

	return tx.Commit()
}
