package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/users.sql
var seedUsersSQL string

// MigrateUp creates the schema idempotently. It is safe to run at every startup.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id       SERIAL PRIMARY KEY,
    nickname TEXT NOT NULL UNIQUE,
    email    TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS advs (
    id         SERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    descr      TEXT,
    owner_id   INTEGER NOT NULL REFERENCES users(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// オーナー別の参照用インデックス
	if _, err := database.Exec(
		`CREATE INDEX IF NOT EXISTS idx_advs_owner_id ON advs(owner_id)`); err != nil {
		return err
	}

	// シードデータの投入(重複は自動的にスキップ)
	if _, err := database.Exec(seedUsersSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown rolls back the schema. Use with caution: this deletes all data.
func MigrateDown(database *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_advs_owner_id`,
		`DROP TABLE IF EXISTS advs CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
