// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

const selectColumns = `d.id, d.topic, d.content_type, d.style, d.length, d.format,
	d.title, d.body, d.rendered, d.created_at`

// Get returns the document with id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM documents d WHERE d.id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("looking up document %s: %w", id, err)
	}
	return e, nil
}

// List returns the newest documents first. limit <= 0 uses the configured
// maximum.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM documents d
		 ORDER BY d.created_at DESC, d.rowid DESC LIMIT ?`, s.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return collect(rows)
}

// Search runs an FTS5 query over titles and bodies and returns matches by
// relevance. limit <= 0 uses the configured maximum.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+`
		 FROM documents_fts
		 JOIN documents d ON d.rowid = documents_fts.rowid
		 WHERE documents_fts MATCH ?
		 ORDER BY documents_fts.rank LIMIT ?`, query, s.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching archive: %w", err)
	}
	return collect(rows)
}

func (s *Store) limit(n int) int {
	if n <= 0 {
		return s.maxResults
	}
	return n
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e                              Entry
		contentType, style, length, fm string
		title, body                    sql.NullString
		createdAt                      string
	)
	if err := sc.Scan(&e.ID, &e.Topic, &contentType, &style, &length, &fm,
		&title, &body, &e.Rendered, &createdAt); err != nil {
		return Entry{}, err
	}
	e.ContentType = types.ContentType(contentType)
	e.Style = types.Style(style)
	e.Length = types.Length(length)
	e.Format = types.OutputFormat(fm)
	e.Title = title.String
	e.Body = body.String

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = t
	return e, nil
}

func collect(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
