// Package storage persists the interactive classification history and
// daily usage summaries to SQLite so they survive dashboard restarts.
// Persistence is best-effort: when the database cannot be opened the
// dashboard runs memory-only and the TUI shows a no-persistence
// indicator.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/routelab/agenttop/internal/platform"
)

const schema = `
CREATE TABLE IF NOT EXISTS classifications (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	prompt      TEXT NOT NULL,
	agent_id    TEXT NOT NULL,
	agent_name  TEXT NOT NULL,
	confidence  REAL NOT NULL,
	method      TEXT NOT NULL,
	duration_ms REAL NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_classifications_created
	ON classifications(created_at);

CREATE TABLE IF NOT EXISTS daily_usage (
	date         TEXT PRIMARY KEY,
	total_tokens INTEGER NOT NULL,
	cost_usd     REAL NOT NULL,
	requests     INTEGER NOT NULL
);
`

// ClassificationEntry is one persisted classification test.
type ClassificationEntry struct {
	Prompt    string
	Result    platform.ClassificationResult
	CreatedAt time.Time
}

// DailyUsage is one persisted usage summary row.
type DailyUsage struct {
	Date        string
	TotalTokens int64
	CostUSD     float64
	Requests    int
}

// Store wraps the SQLite database. All operations are synchronous; the
// write volume here is one row per user action.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveClassification appends one classification test to the history.
func (s *Store) SaveClassification(prompt string, res platform.ClassificationResult) error {
	_, err := s.db.Exec(`
		INSERT INTO classifications (prompt, agent_id, agent_name, confidence, method, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		prompt, res.AgentID, res.AgentName, res.Confidence, string(res.Method), res.DurationMS,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving classification: %w", err)
	}
	return nil
}

// RecentClassifications returns up to limit entries, newest first.
// Alternatives are not persisted; restored entries carry only the winning
// agent.
func (s *Store) RecentClassifications(limit int) ([]ClassificationEntry, error) {
	rows, err := s.db.Query(`
		SELECT prompt, agent_id, agent_name, confidence, method, duration_ms, created_at
		FROM classifications
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying classifications: %w", err)
	}
	defer rows.Close()

	var entries []ClassificationEntry
	for rows.Next() {
		var e ClassificationEntry
		var method, createdAt string
		if err := rows.Scan(&e.Prompt, &e.Result.AgentID, &e.Result.AgentName,
			&e.Result.Confidence, &method, &e.Result.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning classification row: %w", err)
		}
		e.Result.Method = platform.Method(method)
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveDailyUsage upserts the usage summary for one date (YYYY-MM-DD).
func (s *Store) SaveDailyUsage(u DailyUsage) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_usage (date, total_tokens, cost_usd, requests)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			total_tokens = excluded.total_tokens,
			cost_usd     = excluded.cost_usd,
			requests     = excluded.requests`,
		u.Date, u.TotalTokens, u.CostUSD, u.Requests,
	)
	if err != nil {
		return fmt.Errorf("saving daily usage: %w", err)
	}
	return nil
}

// QueryDailyUsage returns the usage summaries for the last days days,
// oldest first.
func (s *Store) QueryDailyUsage(days int) ([]DailyUsage, error) {
	cutoff := time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	rows, err := s.db.Query(`
		SELECT date, total_tokens, cost_usd, requests
		FROM daily_usage
		WHERE date >= ?
		ORDER BY date ASC`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("querying daily usage: %w", err)
	}
	defer rows.Close()

	var result []DailyUsage
	for rows.Next() {
		var u DailyUsage
		if err := rows.Scan(&u.Date, &u.TotalTokens, &u.CostUSD, &u.Requests); err != nil {
			return nil, fmt.Errorf("scanning usage row: %w", err)
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// Prune deletes classification rows older than retentionDays.
func (s *Store) Prune(retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays).UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(`DELETE FROM classifications WHERE created_at < ?`, cutoff); err != nil {
		return fmt.Errorf("pruning classifications: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
