package sqlrepo

import (
	"context"
	"database/sql"
	"fmt"

	"employee-tracker/config"
)

// The tracker itself never changes the schema. Migrate exists so tests and
// throwaway sqlite files can get the same three tables the operator's
// database already has.
//
// sqlite keeps text that does not look like a number as TEXT even in a
// DECIMAL column, so the CHECK stands in for MySQL's strict mode.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS department (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(30) NOT NULL UNIQUE
);`,
	`CREATE TABLE IF NOT EXISTS role (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title VARCHAR(30) NOT NULL,
    salary DECIMAL(10, 2) NOT NULL CHECK (typeof(salary) IN ('integer', 'real')),
    department_id INTEGER NOT NULL REFERENCES department(id)
);`,
	`CREATE TABLE IF NOT EXISTS employee (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name VARCHAR(30) NOT NULL,
    last_name VARCHAR(30) NOT NULL,
    role_id INTEGER NOT NULL REFERENCES role(id),
    manager_id INTEGER REFERENCES employee(id) ON DELETE SET NULL
);`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS department (
    id INT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(30) NOT NULL UNIQUE
);`,
	`CREATE TABLE IF NOT EXISTS role (
    id INT AUTO_INCREMENT PRIMARY KEY,
    title VARCHAR(30) NOT NULL,
    salary DECIMAL(10, 2) NOT NULL,
    department_id INT NOT NULL,
    FOREIGN KEY (department_id) REFERENCES department(id)
);`,
	`CREATE TABLE IF NOT EXISTS employee (
    id INT AUTO_INCREMENT PRIMARY KEY,
    first_name VARCHAR(30) NOT NULL,
    last_name VARCHAR(30) NOT NULL,
    role_id INT NOT NULL,
    manager_id INT NULL,
    FOREIGN KEY (role_id) REFERENCES role(id),
    FOREIGN KEY (manager_id) REFERENCES employee(id) ON DELETE SET NULL
);`,
}

func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case config.DriverSQLite:
		stmts = sqliteSchema
	case config.DriverMySQL:
		stmts = mysqlSchema
	default:
		return config.ErrUnsupportedDriver{Driver: driver}
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
