package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/zephyrtronium/calculator"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema
const currentSchemaVersion = 1

// Journal is durable storage for evaluated expressions.
type Journal struct {
	db      *sql.DB
	session string
	now     func() time.Time
}

// Open creates or opens a journal database at the given path. Evaluations
// appended through the returned Journal belong to a new session.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Journal{db: db, session: uuid.NewString(), now: time.Now}, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Session returns the ID under which this journal appends evaluations.
func (j *Journal) Session() string {
	return j.session
}

// Append records an evaluation.
func (j *Journal) Append(ctx context.Context, key, value string) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO evaluations (session, expression, result, created_at) VALUES (?, ?, ?, ?)`,
		j.session, key, value, j.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("append evaluation: %w", err)
	}
	return nil
}

// Load returns every recorded evaluation in the order they were appended.
func (j *Journal) Load(ctx context.Context) ([]calculator.ResultPair, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT expression, result FROM evaluations ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load evaluations: %w", err)
	}
	defer rows.Close()

	var pairs []calculator.ResultPair
	for rows.Next() {
		var p calculator.ResultPair
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load evaluations: %w", err)
	}
	return pairs, nil
}

// Replay loads the journal into a history.
func (j *Journal) Replay(ctx context.Context, h *calculator.History) (int, error) {
	pairs, err := j.Load(ctx)
	if err != nil {
		return 0, err
	}
	for _, p := range pairs {
		h.Record(p.Key, p.Value)
	}
	return len(pairs), nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist. It is idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("journal schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}
