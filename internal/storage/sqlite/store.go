// Package sqlite keeps task snapshots in a single-table SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/tiwariParth/go-task-manager/internal/models"
	"github.com/tiwariParth/go-task-manager/internal/storage"
	"github.com/tiwariParth/go-task-manager/internal/task"
)

const schema = `CREATE TABLE IF NOT EXISTS tasks (
	position INTEGER NOT NULL,
	id INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	priority TEXT NOT NULL,
	due_date TEXT NOT NULL,
	status TEXT NOT NULL
)`

// SQLiteStore implements storage.Gateway with a SQLite database file.
// Each Save replaces the whole table inside one transaction.
type SQLiteStore struct {
	dbPath string
	log    logrus.FieldLogger
}

// NewSQLiteStore creates a SQLiteStore for dbPath. The database is opened per call.
func NewSQLiteStore(dbPath string, log logrus.FieldLogger) *SQLiteStore {
	return &SQLiteStore{
		dbPath: dbPath,
		log:    log.WithField("component", "sqlite-store"),
	}
}

// Save replaces every stored row with the given tasks.
func (s *SQLiteStore) Save(tasks []*models.Task) error {
	if err := s.save(tasks); err != nil {
		s.log.WithError(err).Warn("error saving tasks")
		return err
	}
	s.log.WithField("tasks", len(tasks)).Debug("tasks saved")
	return nil
}

// Load reads the stored rows back into a store.
func (s *SQLiteStore) Load() *task.TaskStore {
	store, err := s.load()
	if err != nil {
		return storage.Recover(s.log, s.dbPath, err)
	}
	s.log.WithField("tasks", store.Len()).Debug("tasks loaded")
	return store
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	if dir := filepath.Dir(s.dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", s.dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, classify(fmt.Errorf("init schema: %w", err))
	}
	return db, nil
}

func (s *SQLiteStore) save(tasks []*models.Task) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tasks (position, id, title, description, priority, due_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		if _, err := stmt.Exec(i, t.ID, t.Title, t.Description, t.Priority.String(), t.DueDate, t.Status.String()); err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) load() (*task.TaskStore, error) {
	// sql.Open would create the file; a first run must be reported as such.
	if _, err := os.Stat(s.dbPath); err != nil {
		return nil, err
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, title, description, priority, due_date, status FROM tasks ORDER BY position`)
	if err != nil {
		return nil, classify(fmt.Errorf("query tasks: %w", err))
	}
	defer rows.Close()

	var records []storage.Record
	for rows.Next() {
		var (
			id                                            int
			title, description, priority, dueDate, status string
		)
		if err := rows.Scan(&id, &title, &description, &priority, &dueDate, &status); err != nil {
			return nil, classify(fmt.Errorf("scan task: %w", err))
		}
		records = append(records, storage.Record{
			ID:          &id,
			Title:       &title,
			Description: &description,
			Priority:    &priority,
			DueDate:     &dueDate,
			Status:      &status,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classify(fmt.Errorf("iterate tasks: %w", err))
	}

	return storage.Seed(records)
}

// classify marks errors SQLite reports for damaged or foreign files as corruption.
func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrCorrupt, sqlite3.ErrNotADB:
			return fmt.Errorf("%w: %v", storage.ErrCorruptSnapshot, err)
		}
	}
	return err
}
