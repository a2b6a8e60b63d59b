// Package catalog records batch scan results in a SQLite database so that
// textures can be looked up by content digest across many files.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id          TEXT PRIMARY KEY,
	root        TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT
);
CREATE TABLE IF NOT EXISTS files (
	scan_id TEXT NOT NULL REFERENCES scans(id),
	path    TEXT NOT NULL,
	variant TEXT NOT NULL,
	records INTEGER NOT NULL,
	unknown INTEGER NOT NULL,
	meshes  INTEGER NOT NULL,
	skins   INTEGER NOT NULL,
	error   TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (scan_id, path)
);
CREATE TABLE IF NOT EXISTS textures (
	scan_id TEXT NOT NULL REFERENCES scans(id),
	path    TEXT NOT NULL,
	name    TEXT NOT NULL,
	format  TEXT NOT NULL,
	width   INTEGER NOT NULL,
	height  INTEGER NOT NULL,
	digest  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS textures_digest ON textures(digest);
`

// File is the summary stored for one scanned file.
type File struct {
	Path     string
	Variant  string
	Records  int
	Unknown  int
	Meshes   int
	Skins    int
	Err      string // Empty when the file parsed
	Textures []Texture
}

// Texture is one catalogued texture.
type Texture struct {
	Name   string
	Format string
	Width  int
	Height int
	Digest string
}

// Hit is a texture found by digest.
type Hit struct {
	ScanID string
	Path   string
	Texture
}

// Store is an open catalogue database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalogue at path. Use ":memory:" for a
// throwaway database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// One connection keeps :memory: databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginScan registers a new scan of root and returns its id.
func (s *Store) BeginScan(ctx context.Context, root string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scans (id, root, started_at) VALUES (?, ?, ?)`,
		id, root, now())
	if err != nil {
		return "", fmt.Errorf("beginning scan: %w", err)
	}
	return id, nil
}

// FinishScan stamps the scan's completion time.
func (s *Store) FinishScan(ctx context.Context, scanID string) error {
	if err := validID(scanID); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE scans SET finished_at = ? WHERE id = ?`, now(), scanID)
	if err != nil {
		return fmt.Errorf("finishing scan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finishing scan %s: no such scan", scanID)
	}
	return nil
}

// RecordFile stores f and its textures under scanID in one transaction.
func (s *Store) RecordFile(ctx context.Context, scanID string, f File) error {
	if err := validID(scanID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("recording %s: %w", f.Path, err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO files (scan_id, path, variant, records, unknown, meshes, skins, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		scanID, f.Path, f.Variant, f.Records, f.Unknown, f.Meshes, f.Skins, f.Err)
	if err != nil {
		return fmt.Errorf("recording %s: %w", f.Path, err)
	}

	for _, t := range f.Textures {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO textures (scan_id, path, name, format, width, height, digest)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			scanID, f.Path, t.Name, t.Format, t.Width, t.Height, t.Digest)
		if err != nil {
			return fmt.Errorf("recording texture %s in %s: %w", t.Name, f.Path, err)
		}
	}

	return tx.Commit()
}

// Files returns the files recorded for scanID, ordered by path. Textures
// are not loaded.
func (s *Store) Files(ctx context.Context, scanID string) ([]File, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, variant, records, unknown, meshes, skins, error
		 FROM files WHERE scan_id = ? ORDER BY path`, scanID)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	defer rows.Close()

	var out []File
	for rows.Next() {
		var f File
		if err := rows.Scan(&f.Path, &f.Variant, &f.Records, &f.Unknown, &f.Meshes, &f.Skins, &f.Err); err != nil {
			return nil, fmt.Errorf("listing files: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Textures returns every texture whose raw bytes hash to digest, across
// all scans, ordered by path and name.
func (s *Store) Textures(ctx context.Context, digest string) ([]Hit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT scan_id, path, name, format, width, height, digest
		 FROM textures WHERE digest = ? ORDER BY path, name`, digest)
	if err != nil {
		return nil, fmt.Errorf("looking up digest: %w", err)
	}
	defer rows.Close()

	var out []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ScanID, &h.Path, &h.Name, &h.Format, &h.Width, &h.Height, &h.Digest); err != nil {
			return nil, fmt.Errorf("looking up digest: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid scan id %q: %w", id, err)
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
