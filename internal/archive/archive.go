package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/FM-Hayajneh/FM.Hayajneh/internal/model"
)

// Archive provides SQLite-based storage for analysis inputs. Only inputs
// are stored: a generated document can always be reproduced from its record,
// so persisting payloads would add size without adding information.
//
// Design decision: We use a single database file for all cases rather than
// one file per case. This simplifies history queries across cases and
// backup/restore operations.
type Archive struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Archive behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default archive options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an Archive at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned.
func Open(dbDir string, opts Options) (*Archive, error) {
	dbPath := filepath.Join(dbDir, "vetreport.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("archive not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check archive path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	// modernc.org/sqlite connection strings: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	// SQLite only supports one writer; a single pooled connection avoids
	// SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	a := &Archive{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := a.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Path returns the location of the database file.
func (a *Archive) Path() string {
	return a.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (a *Archive) createTables() error {
	schema := `
	-- Analysis records store diagnosis inputs as JSON plus denormalized
	-- columns for list views.
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		case_id TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		language TEXT NOT NULL,
		overall_confidence REAL,
		disease_en TEXT,
		disease_ar TEXT,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_case ON analyses(case_id);
	CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
	`

	_, err := a.db.ExecContext(context.Background(), schema)
	return err
}

// Record is a stored analysis with its full input.
type Record struct {
	ID                int64
	CaseID            string
	CreatedAt         time.Time
	Language          model.Language
	OverallConfidence float64
	Result            *model.AnalysisResult
}

// Summary is the list view of a stored analysis. It carries the denormalized
// columns only, so history listings never deserialize full records.
type Summary struct {
	ID                int64
	CaseID            string
	CreatedAt         time.Time
	Language          model.Language
	OverallConfidence float64
	DiseaseNames      model.LocalizedText
}

// SaveAnalysis stores an analysis input under a case identifier and returns
// the record ID.
func (a *Archive) SaveAnalysis(ctx context.Context, caseID string, lang model.Language, result *model.AnalysisResult) (int64, error) {
	if result == nil {
		return 0, fmt.Errorf("cannot archive a nil analysis")
	}
	if !lang.Valid() {
		return 0, fmt.Errorf("cannot archive analysis: %w: code %d", model.ErrUnsupportedLanguage, int(lang))
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize analysis: %w", err)
	}

	query := `
	INSERT INTO analyses (case_id, language, overall_confidence, disease_en, disease_ar, result_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := a.db.ExecContext(ctx, query,
		caseID,
		lang.String(),
		result.OverallConfidence,
		result.Disease.Name.GetOr(model.LanguageEnglish, ""),
		result.Disease.Name.GetOr(model.LanguageArabic, ""),
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to archive analysis: %w", err)
	}

	return res.LastInsertId()
}

// Analysis retrieves a stored analysis by its record ID. It returns nil
// without error when no record exists.
func (a *Archive) Analysis(ctx context.Context, id int64) (*Record, error) {
	query := `
	SELECT id, case_id, created_at, language, overall_confidence, result_json
	FROM analyses
	WHERE id = ?
	`

	return a.scanRecord(a.db.QueryRowContext(ctx, query, id))
}

// LatestAnalysis retrieves the most recent analysis for a case. It returns
// nil without error when the case has no records.
func (a *Archive) LatestAnalysis(ctx context.Context, caseID string) (*Record, error) {
	query := `
	SELECT id, case_id, created_at, language, overall_confidence, result_json
	FROM analyses
	WHERE case_id = ?
	ORDER BY created_at DESC, id DESC
	LIMIT 1
	`

	return a.scanRecord(a.db.QueryRowContext(ctx, query, caseID))
}

func (a *Archive) scanRecord(row *sql.Row) (*Record, error) {
	var record Record
	var createdAt string
	var langCode string
	var resultJSON string

	err := row.Scan(
		&record.ID,
		&record.CaseID,
		&createdAt,
		&langCode,
		&record.OverallConfidence,
		&resultJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}

	record.CreatedAt = parseTimestamp(createdAt)

	record.Language, err = model.ParseLanguage(langCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse archived analysis: %w", err)
	}
	record.Result = &result

	return &record, nil
}

// History lists stored analyses, newest first. An empty caseID lists every
// case; a non-positive limit lists everything.
func (a *Archive) History(ctx context.Context, caseID string, limit int) ([]Summary, error) {
	query := `
	SELECT id, case_id, created_at, language, overall_confidence, disease_en, disease_ar
	FROM analyses
	WHERE 1=1
	`
	args := make([]any, 0, 2)

	if caseID != "" {
		query += " AND case_id = ?"
		args = append(args, caseID)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var results []Summary
	for rows.Next() {
		var s Summary
		var createdAt string
		var langCode string
		var diseaseEN, diseaseAR sql.NullString

		err := rows.Scan(
			&s.ID,
			&s.CaseID,
			&createdAt,
			&langCode,
			&s.OverallConfidence,
			&diseaseEN,
			&diseaseAR,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis summary: %w", err)
		}

		s.CreatedAt = parseTimestamp(createdAt)

		s.Language, err = model.ParseLanguage(langCode)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis summary: %w", err)
		}

		s.DiseaseNames = make(model.LocalizedText, 2)
		if diseaseEN.Valid && diseaseEN.String != "" {
			s.DiseaseNames[model.LanguageEnglish] = diseaseEN.String
		}
		if diseaseAR.Valid && diseaseAR.String != "" {
			s.DiseaseNames[model.LanguageArabic] = diseaseAR.String
		}

		results = append(results, s)
	}

	return results, rows.Err()
}

// Cases returns every case identifier present in the archive, sorted.
func (a *Archive) Cases(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT case_id FROM analyses
	ORDER BY case_id
	`

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var cases []string
	for rows.Next() {
		var caseID string
		if err := rows.Scan(&caseID); err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, caseID)
	}

	return cases, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on
// configuration. If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
