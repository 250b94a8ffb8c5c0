package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN fails on databases that already have it.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id          TEXT PRIMARY KEY,
		external_id TEXT NOT NULL DEFAULT '',
		title       TEXT NOT NULL,
		stage       TEXT NOT NULL DEFAULT '',
		responsible TEXT NOT NULL DEFAULT '',
		module      TEXT NOT NULL DEFAULT 'atividades'
		            CHECK(module IN ('tarefas','atividades','fornecedores','orcamentos','logistica','relatorios')),
		raw_status  TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'Planejado'
		            CHECK(status IN ('Planejado','Pendente','Em andamento','Concluída','Paralizada')),
		hours       REAL NOT NULL DEFAULT 0,
		budget      REAL NOT NULL DEFAULT 0,
		created_at  TEXT,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_module ON activities(module)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_created ON activities(created_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_activities_external
		ON activities(external_id) WHERE external_id != ''`,

	`CREATE TABLE IF NOT EXISTS requisitions (
		id          TEXT PRIMARY KEY,
		external_id TEXT NOT NULL DEFAULT '',
		material    TEXT NOT NULL,
		unit        TEXT NOT NULL,
		quantity    REAL NOT NULL CHECK(quantity >= 0),
		need_date   TEXT,
		supplier    TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_requisitions_need_date ON requisitions(need_date)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Columns added after the first release.
	`ALTER TABLE activities ADD COLUMN budget REAL NOT NULL DEFAULT 0`,
	`ALTER TABLE activities ADD COLUMN responsible TEXT NOT NULL DEFAULT ''`,
}
