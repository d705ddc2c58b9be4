package pgstore

// Tasks are dropped before categories so the foreign key never dangles
// mid-teardown.
var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		done        BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_category_id ON tasks(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS tasks`,
	`DROP TABLE IF EXISTS categories`,
}
