package sqlstore

// SQLite spells booleans as INTEGER. Tasks are dropped before categories
// so the foreign key never dangles mid-teardown.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	done        INTEGER NOT NULL DEFAULT 0 CHECK (done IN (0, 1)),
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_category_id ON tasks(category_id);
CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);
`

const dropSQL = `
DROP TABLE IF EXISTS tasks;
DROP TABLE IF EXISTS categories;
`
