package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/wfkit/internal/model"
)

// CatalogDB provides SQLite-based storage for catalog fetch history.
// It manages connection pooling and provides methods for recording and
// querying fetch runs.
type CatalogDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures CatalogDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// FetchRecord is one recorded fetch run.
type FetchRecord struct {
	// ID is the database row identifier.
	ID int64

	// Topic is the searched GitHub topic.
	Topic string

	// TotalCount is the total the API reported on the first page.
	TotalCount int

	// Pages is the number of pages fetched.
	Pages int

	// RepoCount is the number of records the run produced.
	RepoCount int

	// FetchedAt is when the run completed.
	FetchedAt time.Time
}

// Open opens or creates a CatalogDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned.
func Open(dbDir string, opts Options) (*CatalogDB, error) {
	dbPath := filepath.Join(dbDir, "wfkit.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY without sacrificing anything at this scale.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CatalogDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CatalogDB) Close() error {
	return cdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CatalogDB) createTables() error {
	schema := `
	-- Fetch runs, one row per successful catalog fetch
	CREATE TABLE IF NOT EXISTS fetches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		topic TEXT NOT NULL,
		total_count INTEGER NOT NULL,
		pages INTEGER NOT NULL,
		repo_count INTEGER NOT NULL,
		fetched_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_fetches_topic ON fetches(topic);
	CREATE INDEX IF NOT EXISTS idx_fetches_fetched_at ON fetches(fetched_at);

	-- Repository records, upserted by owner/name across runs
	CREATE TABLE IF NOT EXISTS repos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		full_name TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		owner TEXT NOT NULL,
		description TEXT,
		url TEXT NOT NULL,
		stars INTEGER NOT NULL,
		lang TEXT,
		topics TEXT,
		first_seen DATETIME NOT NULL,
		last_seen DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_repos_owner ON repos(owner);
	CREATE INDEX IF NOT EXISTS idx_repos_stars ON repos(stars);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveFetch records a completed fetch run and upserts its repositories.
// The whole save runs in one transaction: either the run and all of its
// records land, or none do.
func (cdb *CatalogDB) SaveFetch(ctx context.Context, result *model.FetchResult) (int64, error) {
	tx, err := cdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	res, err := tx.ExecContext(ctx,
		`INSERT INTO fetches (topic, total_count, pages, repo_count, fetched_at)
		 VALUES (?, ?, ?, ?, ?)`,
		result.Topic, result.TotalCount, result.Pages, len(result.Repos), result.FetchedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert fetch: %w", err)
	}

	fetchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get fetch ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO repos (full_name, name, owner, description, url, stars, lang, topics, first_seen, last_seen)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(full_name) DO UPDATE SET
			description = excluded.description,
			url = excluded.url,
			stars = excluded.stars,
			lang = excluded.lang,
			topics = excluded.topics,
			last_seen = excluded.last_seen`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare repo upsert: %w", err)
	}
	defer stmt.Close()

	for i := range result.Repos {
		repo := &result.Repos[i]

		topics, err := json.Marshal(repo.Topics)
		if err != nil {
			return 0, fmt.Errorf("failed to encode topics for %s: %w", repo.FullName(), err)
		}

		if _, err := stmt.ExecContext(ctx,
			repo.FullName(), repo.Name, repo.Owner, repo.Description,
			repo.URL, repo.Stars, repo.Lang, string(topics),
			result.FetchedAt, result.FetchedAt,
		); err != nil {
			return 0, fmt.Errorf("failed to upsert repo %s: %w", repo.FullName(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit fetch: %w", err)
	}

	return fetchID, nil
}

// RecentFetches returns the most recent fetch runs, newest first.
func (cdb *CatalogDB) RecentFetches(ctx context.Context, limit int) ([]FetchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := cdb.db.QueryContext(ctx,
		`SELECT id, topic, total_count, pages, repo_count, fetched_at
		 FROM fetches ORDER BY fetched_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query fetches: %w", err)
	}
	defer rows.Close()

	var records []FetchRecord
	for rows.Next() {
		var rec FetchRecord
		if err := rows.Scan(&rec.ID, &rec.Topic, &rec.TotalCount,
			&rec.Pages, &rec.RepoCount, &rec.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fetch record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// RepoCount returns the number of distinct repositories ever recorded.
func (cdb *CatalogDB) RepoCount(ctx context.Context) (int, error) {
	var count int
	err := cdb.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM repos`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count repos: %w", err)
	}
	return count, nil
}

// GetRepo looks up one repository record by its owner/name identifier.
// Returns sql.ErrNoRows wrapped when the repository has never been seen.
func (cdb *CatalogDB) GetRepo(ctx context.Context, fullName string) (*model.Repo, error) {
	var repo model.Repo
	var topics string

	err := cdb.db.QueryRowContext(ctx,
		`SELECT name, owner, description, url, stars, lang, topics
		 FROM repos WHERE full_name = ?`, fullName).
		Scan(&repo.Name, &repo.Owner, &repo.Description, &repo.URL,
			&repo.Stars, &repo.Lang, &topics)
	if err != nil {
		return nil, fmt.Errorf("failed to get repo %s: %w", fullName, err)
	}

	if err := json.Unmarshal([]byte(topics), &repo.Topics); err != nil {
		return nil, fmt.Errorf("failed to decode topics for %s: %w", fullName, err)
	}
	if repo.Topics == nil {
		repo.Topics = []string{}
	}

	return &repo, nil
}
