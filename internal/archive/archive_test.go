// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.ArchiveConfig{Dir: filepath.Join(t.TempDir(), "archive"), MaxResults: 20})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func sampleEntries() []Entry {
	return []Entry{
		{
			Topic: "Docker", ContentType: types.ContentBlogPost, Style: types.StyleTechnical,
			Length: types.LengthShort, Format: types.FormatMarkdown,
			Title: "Docker Networking Explained", Body: "Bridge networks connect containers on one host.",
			Rendered: "# Docker Networking Explained", CreatedAt: base,
		},
		{
			Topic: "Kubernetes", ContentType: types.ContentTutorial, Style: types.StyleTutorial,
			Length: types.LengthMedium, Format: types.FormatHTML,
			Title: "Your First Kubernetes Deployment", Body: "A deployment manages replica sets of containers.",
			Rendered: "<h1>Your First Kubernetes Deployment</h1>", CreatedAt: base.Add(time.Hour),
		},
		{
			Topic: "Rust", ContentType: types.ContentBlogPost, Style: types.StyleDeepDive,
			Length: types.LengthLong, Format: types.FormatJSON,
			Title: "Ownership in Rust", Body: "The borrow checker enforces aliasing rules.",
			Rendered: `{"title":"Ownership in Rust"}`, CreatedAt: base.Add(2 * time.Hour),
		},
	}
}

func saveAll(t *testing.T, s *Store, entries []Entry) []string {
	t.Helper()
	ids := make([]string, len(entries))
	for i, e := range entries {
		id, err := s.Save(context.Background(), e)
		if err != nil {
			t.Fatal(err)
		}
		ids[i] = id
	}
	return ids
}

// --- tests ---

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "archive")
	s, err := NewStore(types.ArchiveConfig{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, dbFile)); err != nil {
		t.Fatalf("database file missing: %v", err)
	}
	if s.maxResults != defaultMaxResults {
		t.Errorf("maxResults = %d, want %d", s.maxResults, defaultMaxResults)
	}
}

func TestNewStoreReopens(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(types.ArchiveConfig{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	id, err := s.Save(context.Background(), sampleEntries()[0])
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := NewStore(types.ArchiveConfig{Dir: dir})
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer s2.Close()
	if _, err := s2.Get(context.Background(), id); err != nil {
		t.Errorf("Get after reopen: %v", err)
	}
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	want := sampleEntries()[0]

	id, err := s.Save(context.Background(), want)
	if err != nil {
		t.Fatal(err)
	}
	if len(id) != 36 {
		t.Errorf("id = %q, want a UUID", id)
	}

	got, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	want.ID = id
	if got.ID != want.ID || got.Title != want.Title || got.Body != want.Body ||
		got.Rendered != want.Rendered || got.Style != want.Style || got.Length != want.Length ||
		got.Format != want.Format || got.ContentType != want.ContentType {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestSaveKeepsExplicitID(t *testing.T) {
	s := testStore(t)
	e := sampleEntries()[0]
	e.ID = "fixed-id"

	id, err := s.Save(context.Background(), e)
	if err != nil {
		t.Fatal(err)
	}
	if id != "fixed-id" {
		t.Errorf("id = %q", id)
	}
	if _, err := s.Save(context.Background(), e); err == nil {
		t.Error("expected duplicate ID to fail")
	}
}

func TestGetNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)
	saveAll(t, s, sampleEntries())

	got, err := s.List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Rust", "Kubernetes", "Docker"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, topic := range want {
		if got[i].Topic != topic {
			t.Errorf("entry %d topic = %q, want %q", i, got[i].Topic, topic)
		}
	}

	limited, err := s.List(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].Topic != "Rust" {
		t.Errorf("List(1) = %+v", limited)
	}
}

func TestListEmpty(t *testing.T) {
	got, err := testStore(t).List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List on empty archive = %#v, want empty slice", got)
	}
}

func TestSearch(t *testing.T) {
	s := testStore(t)
	saveAll(t, s, sampleEntries())

	tests := []struct {
		query string
		want  []string
	}{
		{"containers", []string{"Docker", "Kubernetes"}},
		{"borrow", []string{"Rust"}},
		{"ownership", []string{"Rust"}},
		{"title:kubernetes", []string{"Kubernetes"}},
		{"serverless", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := s.Search(context.Background(), tt.query, 0)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			topics := map[string]bool{}
			for _, e := range got {
				topics[e.Topic] = true
			}
			for _, w := range tt.want {
				if !topics[w] {
					t.Errorf("missing %s in results", w)
				}
			}
		})
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	if _, err := testStore(t).Search(context.Background(), "", 0); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestExportYAML(t *testing.T) {
	s := testStore(t)
	saveAll(t, s, sampleEntries())

	path := filepath.Join(t.TempDir(), "export.yaml")
	n, err := s.ExportYAML(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("exported %d, want 3", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ExportEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[0].Topic != "Rust" {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[2].CreatedAt != "2026-03-10T09:00:00Z" {
		t.Errorf("created_at = %q", entries[2].CreatedAt)
	}
}

func TestExportJSON(t *testing.T) {
	s := testStore(t)
	saveAll(t, s, sampleEntries()[:1])

	path := filepath.Join(t.TempDir(), "export.json")
	if _, err := s.ExportJSON(context.Background(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if _, ok := entries[0]["rendered"]; ok {
		t.Error("rendered output should not be exported")
	}
	if entries[0]["title"] != "Docker Networking Explained" {
		t.Errorf("title = %v", entries[0]["title"])
	}
}

func TestExportEmptyArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	n, err := testStore(t).ExportJSON(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("n = %d", n)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Errorf("export = %q, want []", data)
	}
}

func TestNewEntry(t *testing.T) {
	req := types.GenerationRequest{Topic: "Go", Style: types.StyleOverview, Length: types.LengthShort}

	a := &types.Article{Title: "Go in 2026", Content: "Body"}
	e := NewEntry(req, a, types.FormatMarkdown, "# Go in 2026")
	if e.Title != "Go in 2026" || e.Body != "Body" || e.ContentType != types.ContentBlogPost {
		t.Errorf("article entry = %+v", e)
	}

	r := &types.TrendReport{Technology: "Go"}
	req.ContentType = types.ContentTrendReport
	e = NewEntry(req, r, types.FormatJSON, "{}")
	if e.Title != "Go trend report" || e.Style != "" || e.Length != "" {
		t.Errorf("report entry = %+v", e)
	}
}

func TestSchemaErrorNamesBuildTag(t *testing.T) {
	cause := errors.New("no such module: fts5")
	err := schemaError(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("schemaError dropped the cause: %v", err)
	}
	if !strings.Contains(err.Error(), "-tags sqlite_fts5") {
		t.Errorf("error = %q, want build tag hint", err)
	}

	other := schemaError(errors.New("disk I/O error"))
	if strings.Contains(other.Error(), "sqlite_fts5") {
		t.Errorf("unexpected build tag hint in %q", other)
	}
}
