package store

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
)

// SQLite stores designs in a single-file database: one row per design with
// the full document in a JSON column. Suitable for single-host deployments
// that outgrow plain files.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the database at path and
// ensures the schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "open sqlite database")
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "enable WAL")
	}

	const schema = `
CREATE TABLE IF NOT EXISTS designs (
  id         TEXT PRIMARY KEY,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  doc        TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create designs table")
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Save(ctx context.Context, d *design.ArchitecturalDesign) (string, error) {
	data, err := design.MarshalDesign(d)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "encode design")
	}

	id := NewID()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO designs (id, doc) VALUES (?, ?)`, id, string(data))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "insert design")
	}
	return id, nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*design.ArchitecturalDesign, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM designs WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.ErrCodeNotFound, "design %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "query design %s", id)
	}

	d, err := design.UnmarshalDesign([]byte(doc))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode design %s", id)
	}
	return d, nil
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete design %s", id)
	}
	return nil
}

func (s *SQLite) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM designs ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list designs")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "scan design id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list designs")
	}
	return ids, nil
}

func (s *SQLite) Close() error { return s.db.Close() }
