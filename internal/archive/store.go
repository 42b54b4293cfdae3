// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps generated documents in a local SQLite database with
// a full-text index over title and body, so earlier articles can be listed,
// searched, and exported.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

const (
	dbFile            = "techblog.db"
	defaultDir        = "archive"
	defaultMaxResults = 20
)

// ErrNotFound is returned by Get when no document has the given ID.
var ErrNotFound = errors.New("document not found")

// Entry is one archived document together with the request that produced it.
type Entry struct {
	ID          string             `json:"id" yaml:"id"`
	Topic       string             `json:"topic" yaml:"topic"`
	ContentType types.ContentType  `json:"content_type" yaml:"content_type"`
	Style       types.Style        `json:"style,omitempty" yaml:"style,omitempty"`
	Length      types.Length       `json:"length,omitempty" yaml:"length,omitempty"`
	Format      types.OutputFormat `json:"format" yaml:"format"`
	Title       string             `json:"title" yaml:"title"`
	Body        string             `json:"body" yaml:"body"`

	// Rendered is the formatted output exactly as it was written.
	Rendered  string    `json:"rendered" yaml:"rendered"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Store manages the archive database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates dir/techblog.db and its schema.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, dir: dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Dir returns the directory holding the database.
func (s *Store) Dir() string { return s.dir }

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			topic TEXT NOT NULL,
			content_type TEXT NOT NULL,
			style TEXT,
			length TEXT,
			format TEXT NOT NULL,
			title TEXT,
			body TEXT,
			rendered TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(title, body, content=documents, content_rowid=rowid)`,
		`CREATE TRIGGER IF NOT EXISTS documents_ai AFTER INSERT ON documents BEGIN
			INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
		END`,
		`CREATE TRIGGER IF NOT EXISTS documents_ad AFTER DELETE ON documents BEGIN
			INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
		END`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return schemaError(err)
		}
	}
	return nil
}

// schemaError names the missing build tag when the sqlite3 driver was
// compiled without FTS5.
func schemaError(err error) error {
	if strings.Contains(err.Error(), "no such module: fts5") {
		return fmt.Errorf("full-text search unavailable, rebuild with -tags sqlite_fts5: %w", err)
	}
	return fmt.Errorf("executing schema statement: %w", err)
}

// Save inserts e and returns its ID. An empty ID is filled with a new UUID
// and a zero CreatedAt with the current time.
func (s *Store) Save(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, topic, content_type, style, length, format, title, body, rendered, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Topic, string(e.ContentType), string(e.Style), string(e.Length), string(e.Format),
		e.Title, e.Body, e.Rendered, e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("saving document %s: %w", e.ID, err)
	}
	return e.ID, nil
}

// NewEntry builds an archive entry from a processed document. For articles
// the title and body are indexed; trend reports index the technology name.
func NewEntry(req types.GenerationRequest, doc any, format types.OutputFormat, rendered string) Entry {
	e := Entry{
		Topic:       req.Topic,
		ContentType: req.ContentType,
		Style:       req.Style,
		Length:      req.Length,
		Format:      format,
		Rendered:    rendered,
	}
	if e.ContentType == "" {
		e.ContentType = types.ContentBlogPost
	}
	switch d := doc.(type) {
	case *types.Article:
		e.Title = d.Title
		e.Body = d.Content
	case *types.TrendReport:
		e.Title = d.Technology + " trend report"
		e.Style, e.Length = "", ""
	}
	return e
}
