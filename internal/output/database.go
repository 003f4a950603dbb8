// internal/output/database.go
package output

import (
	"database/sql"
	"fmt"
	"strings"

	// Drivers registered for the database output format.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/valeran/harvester/internal/record"
)

// DatabaseWriter writes the harvest into a single SQL table, creating it on
// first write. Supported drivers: sqlite3, postgres, mysql.
type DatabaseWriter struct {
	db     *sql.DB
	driver string
	table  string
}

// NewDatabaseWriter opens a connection for the given driver and DSN.
func NewDatabaseWriter(driver, dsn, table string) (*DatabaseWriter, error) {
	switch driver {
	case "sqlite3", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if table == "" {
		return nil, fmt.Errorf("database output requires a table name")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DatabaseWriter{
		db:     db,
		driver: driver,
		table:  sanitizeIdentifier(table),
	}, nil
}

// Write creates the table if needed and inserts all rows in one transaction.
func (w *DatabaseWriter) Write(headers []string, records []record.Record) error {
	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = sanitizeIdentifier(h)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s TEXT)",
		w.table, strings.Join(columns, " TEXT, "))
	if _, err := w.db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", w.table, err)
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		w.table, strings.Join(columns, ", "), w.placeholders(len(columns)))

	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		values := rec.Values()
		args := make([]interface{}, len(values))
		for j, v := range values {
			args[j] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// placeholders builds the parameter list in the driver's placeholder style.
func (w *DatabaseWriter) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		if w.driver == "postgres" {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// Close closes the database connection.
func (w *DatabaseWriter) Close() error {
	return w.db.Close()
}

// sanitizeIdentifier reduces a name to a safe SQL identifier.
func sanitizeIdentifier(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
