package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"adc/internal/logging"
)

// Store persists recorded architectural decisions in a SQLite database.
type Store struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Open opens or creates the decision database at the given path,
// creating parent directories as needed.
func Open(dbPath string, logger *logging.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dbExists := fileExists(dbPath)

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open decision database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	store := &Store{
		conn:   conn,
		logger: logger,
		dbPath: dbPath,
	}

	if !dbExists {
		logger.Info("Creating decision database", map[string]interface{}{
			"path": dbPath,
		})
	}
	if err := store.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize decision schema: %w", err)
	}

	return store, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// initializeSchema creates the decisions tables.
func (s *Store) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS decisions (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			context TEXT NOT NULL,
			rationale TEXT NOT NULL,
			confidence REAL NOT NULL,
			reasons TEXT NOT NULL,
			recommendation TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'proposed',
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_decisions_status ON decisions(status);
		CREATE INDEX IF NOT EXISTS idx_decisions_created_at ON decisions(created_at DESC);

		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);
		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Decision is a stored architectural decision record.
type Decision struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Context        string    `json:"context"`
	Rationale      string    `json:"rationale"`
	Confidence     float64   `json:"confidence"`
	Reasons        []string  `json:"reasons"`
	Recommendation string    `json:"recommendation"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RecordInput carries the data needed to persist a decision.
type RecordInput struct {
	Title          string
	Context        string
	Rationale      string
	Confidence     float64
	Reasons        []string
	Recommendation string
	Status         string
}

// Record persists a new decision and returns it with its generated ID.
func (s *Store) Record(input RecordInput) (*Decision, error) {
	if input.Title == "" {
		input.Title = input.Context
	}
	if input.Status == "" {
		input.Status = "proposed"
	}

	reasons, err := json.Marshal(input.Reasons)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reasons: %w", err)
	}

	decision := &Decision{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Context:        input.Context,
		Rationale:      input.Rationale,
		Confidence:     input.Confidence,
		Reasons:        input.Reasons,
		Recommendation: input.Recommendation,
		Status:         input.Status,
		CreatedAt:      time.Now().UTC(),
	}

	_, err = s.conn.Exec(`
		INSERT INTO decisions (id, title, context, rationale, confidence, reasons, recommendation, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		decision.ID,
		decision.Title,
		decision.Context,
		decision.Rationale,
		decision.Confidence,
		string(reasons),
		decision.Recommendation,
		decision.Status,
		decision.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert decision: %w", err)
	}

	s.logger.Debug("Decision recorded", map[string]interface{}{
		"id":    decision.ID,
		"title": decision.Title,
	})

	return decision, nil
}

// ListOptions filters a decision listing.
type ListOptions struct {
	Status string // Filter by status, empty for all
	Search string // Substring match on title, context, and rationale
	Limit  int    // Maximum rows, 0 for the default of 50
}

// List returns stored decisions, newest first.
func (s *Store) List(opts ListOptions) ([]Decision, error) {
	query := `SELECT id, title, context, rationale, confidence, reasons, recommendation, status, created_at
		FROM decisions`

	var conditions []string
	var args []interface{}

	if opts.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opts.Status)
	}
	if opts.Search != "" {
		conditions = append(conditions, "(title LIKE ? OR context LIKE ? OR rationale LIKE ?)")
		pattern := "%" + opts.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var decisions []Decision
	for rows.Next() {
		decision, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, *decision)
	}

	return decisions, rows.Err()
}

// Get returns a single decision by ID.
func (s *Store) Get(id string) (*Decision, error) {
	row := s.conn.QueryRow(`
		SELECT id, title, context, rationale, confidence, reasons, recommendation, status, created_at
		FROM decisions WHERE id = ?`, id)

	decision, err := scanDecision(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("decision not found: %s", id)
	}
	return decision, err
}

// scanner abstracts sql.Row and sql.Rows for scanDecision.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDecision(row scanner) (*Decision, error) {
	var d Decision
	var reasons, createdAt string

	if err := row.Scan(&d.ID, &d.Title, &d.Context, &d.Rationale, &d.Confidence,
		&reasons, &d.Recommendation, &d.Status, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan decision: %w", err)
	}

	if err := json.Unmarshal([]byte(reasons), &d.Reasons); err != nil {
		return nil, fmt.Errorf("failed to decode reasons: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	d.CreatedAt = parsed

	return &d, nil
}
