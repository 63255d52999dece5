package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is a SQLite-backed calculation store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the history database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// WAL and a busy timeout so a CLI run and a running server can
	// share the file.
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=10000&_synchronous=NORMAL", dbPath)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer to avoid SQLITE_BUSY
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool TEXT NOT NULL,
		inputs TEXT,
		result TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_tool ON calculations(tool);
	CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record inserts a calculation and fills in its ID and timestamp.
func (s *SQLiteStore) Record(calc *Calculation) error {
	inputs, err := json.Marshal(calc.Inputs)
	if err != nil {
		return fmt.Errorf("failed to marshal inputs: %w", err)
	}

	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = time.Now()
	}

	res, err := s.db.Exec(`
		INSERT INTO calculations (tool, inputs, result, created_at)
		VALUES (?, ?, ?, ?)
	`, calc.Tool, string(inputs), calc.Result, calc.CreatedAt)
	if err != nil {
		return err
	}

	calc.ID, err = res.LastInsertId()
	return err
}

// Recent returns up to limit calculations, newest first.
func (s *SQLiteStore) Recent(limit int) ([]*Calculation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, tool, inputs, result, created_at
		FROM calculations ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []*Calculation
	for rows.Next() {
		calc, err := scanCalculation(rows.Scan)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}

	return calcs, rows.Err()
}

// Get returns a single calculation by ID.
func (s *SQLiteStore) Get(id int64) (*Calculation, error) {
	row := s.db.QueryRow(`
		SELECT id, tool, inputs, result, created_at
		FROM calculations WHERE id = ?
	`, id)

	calc, err := scanCalculation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return calc, err
}

func scanCalculation(scan func(...interface{}) error) (*Calculation, error) {
	var calc Calculation
	var inputsJSON sql.NullString

	if err := scan(&calc.ID, &calc.Tool, &inputsJSON, &calc.Result, &calc.CreatedAt); err != nil {
		return nil, err
	}

	if inputsJSON.Valid && inputsJSON.String != "" && inputsJSON.String != "null" {
		if err := json.Unmarshal([]byte(inputsJSON.String), &calc.Inputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inputs: %w", err)
		}
	}

	return &calc, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
