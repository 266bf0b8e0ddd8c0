package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"todoquiz/internal/quiz"
	"todoquiz/internal/task"
)

const (
	tasksSlot   = "tasks"
	historySlot = "quizHistory"
)

// Store keeps the task collection in its own table and everything else in
// key/value slots. Every Save replaces the previous state in one transaction.
type Store struct {
	db *sql.DB
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if !strings.HasPrefix(dbPath, "file:") {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const tasksDDL = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL DEFAULT 0,
	title TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	due TEXT NOT NULL,
	notes TEXT DEFAULT NULL,
	category TEXT NOT NULL DEFAULT 'Personal',
	reminder INTEGER NOT NULL DEFAULT 0
);`
	const slotsDDL = `
CREATE TABLE IF NOT EXISTS slots (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`
	for _, ddl := range []string{tasksDDL, slotsDDL} {
		if _, err := s.db.Exec(ddl); err != nil {
			return err
		}
	}
	return s.ensureTaskColumns()
}

func (s *Store) ensureTaskColumns() error {
	required := map[string]string{
		"notes":    "ALTER TABLE tasks ADD COLUMN notes TEXT DEFAULT NULL;",
		"category": "ALTER TABLE tasks ADD COLUMN category TEXT NOT NULL DEFAULT 'Personal';",
		"reminder": "ALTER TABLE tasks ADD COLUMN reminder INTEGER NOT NULL DEFAULT 0;",
	}
	existing := map[string]struct{}{}
	rows, err := s.db.Query(`PRAGMA table_info(tasks);`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		existing[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for col, alter := range required {
		if _, ok := existing[col]; ok {
			continue
		}
		if _, err := s.db.Exec(alter); err != nil {
			return err
		}
	}
	return nil
}

// LoadTasks returns the saved collection in order. ok is false when the
// collection has never been saved.
func (s *Store) LoadTasks() ([]task.Task, bool, error) {
	if _, ok, err := s.slot(tasksSlot); err != nil || !ok {
		return nil, false, err
	}

	rows, err := s.db.Query(`SELECT id, title, done, due, notes, category, reminder FROM tasks ORDER BY position;`)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		var doneInt, reminder int
		var dueStr, categoryStr string

		if err := rows.Scan(&t.ID, &t.Title, &doneInt, &dueStr, &t.Notes, &categoryStr, &reminder); err != nil {
			return nil, false, err
		}
		due, err := time.Parse(time.RFC3339Nano, dueStr)
		if err != nil {
			return nil, false, fmt.Errorf("task %s: due: %w", t.ID, err)
		}
		t.Due = due.Local()
		if t.Category, err = task.ParseCategory(categoryStr); err != nil {
			return nil, false, fmt.Errorf("task %s: %w", t.ID, err)
		}
		t.Done = doneInt == 1
		t.Reminder = reminder == 1
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return tasks, true, nil
}

func (s *Store) SaveTasks(tasks []task.Task) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM tasks;`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO tasks (id, position, title, done, due, notes, category, reminder) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range tasks {
		if !t.Category.Valid() {
			return fmt.Errorf("task %s: invalid category %d", t.ID, int(t.Category))
		}
		_, err = stmt.Exec(t.ID, i, t.Title, boolToInt(t.Done), t.Due.UTC().Format(time.RFC3339Nano),
			t.Notes, t.Category.String(), boolToInt(t.Reminder))
		if err != nil {
			return err
		}
	}
	if err = putSlot(tx, tasksSlot, []byte(fmt.Sprintf("%d", len(tasks)))); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadHistory returns quiz results oldest first.
func (s *Store) LoadHistory() ([]quiz.Result, bool, error) {
	data, ok, err := s.slot(historySlot)
	if err != nil || !ok {
		return nil, false, err
	}
	var results []quiz.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false, fmt.Errorf("decode quiz history: %w", err)
	}
	return results, true, nil
}

func (s *Store) SaveHistory(results []quiz.Result) error {
	if results == nil {
		results = []quiz.Result{}
	}
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return putSlot(s.db, historySlot, data)
}

func (s *Store) ClearHistory() error {
	_, err := s.db.Exec(`DELETE FROM slots WHERE key = ?;`, historySlot)
	return err
}

func (s *Store) slot(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func putSlot(ex execer, key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := ex.Exec(`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`, key, value, now)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
