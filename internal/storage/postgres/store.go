// Package postgres implements storage.Store on a single JSONB table.
// Each row holds one document; seq preserves insertion order.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/apexforge/studio-backend/internal/storage"
)

type Store struct {
	db     *sql.DB
	schema string
	table  string
}

// Options configures Open.
type Options struct {
	DSN      string
	Schema   string
	MaxConns int
}

// Open connects, pings and ensures the documents table exists.
func Open(ctx context.Context, opt Options) (*Store, error) {
	db, err := sql.Open("postgres", opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if opt.MaxConns > 0 {
		db.SetMaxOpenConns(opt.MaxConns)
		db.SetMaxIdleConns(opt.MaxConns / 5)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := New(db, opt.Schema)
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection. Documents live in <schema>.documents,
// or in public.documents when schema is empty.
func New(db *sql.DB, schema string) *Store {
	if schema == "" {
		schema = "public"
	}
	quoted := pq.QuoteIdentifier(schema)
	return &Store{
		db:     db,
		schema: quoted,
		table:  quoted + ".documents",
	}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, s.schema),
		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	seq        BIGSERIAL PRIMARY KEY,
	collection TEXT  NOT NULL,
	body       JSONB NOT NULL
)`, s.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS documents_body_gin ON %s USING GIN (body jsonb_path_ops)`, s.table),
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *Store) InsertOne(ctx context.Context, collection string, doc storage.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	q := fmt.Sprintf(`INSERT INTO %s (collection, body) VALUES ($1, $2::jsonb)`, s.table)
	if _, err := s.db.ExecContext(ctx, q, collection, body); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func (s *Store) FindOne(ctx context.Context, collection string, filter storage.Filter) (storage.Document, error) {
	f, err := marshalFilter(filter)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
SELECT body FROM %s
WHERE collection = $1 AND body @> $2::jsonb
ORDER BY seq
LIMIT 1`, s.table)

	var body []byte
	err = s.db.QueryRowContext(ctx, q, collection, f).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	return decode(body)
}

func (s *Store) FindMany(ctx context.Context, collection string, filter storage.Filter, sort *storage.Sort) ([]storage.Document, error) {
	f, err := marshalFilter(filter)
	if err != nil {
		return nil, err
	}

	args := []any{collection, f}
	order := "seq"
	if sort != nil && sort.Field != "" {
		dir := "ASC"
		if sort.Desc {
			dir = "DESC"
		}
		order = fmt.Sprintf("body->>$3 %s, seq", dir)
		args = append(args, sort.Field)
	}

	q := fmt.Sprintf(`
SELECT body FROM %s
WHERE collection = $1 AND body @> $2::jsonb
ORDER BY %s`, s.table, order)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	out := make([]storage.Document, 0, 16)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		doc, err := decode(body)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateOne(ctx context.Context, collection string, filter storage.Filter, set storage.Document) (int64, error) {
	f, err := marshalFilter(filter)
	if err != nil {
		return 0, err
	}
	patch, err := json.Marshal(set)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal update: %w", err)
	}

	q := fmt.Sprintf(`
UPDATE %[1]s SET body = body || $3::jsonb
WHERE seq = (
	SELECT seq FROM %[1]s
	WHERE collection = $1 AND body @> $2::jsonb
	ORDER BY seq
	LIMIT 1
)`, s.table)

	result, err := s.db.ExecContext(ctx, q, collection, f, patch)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", collection, err)
	}
	return result.RowsAffected()
}

func (s *Store) DeleteOne(ctx context.Context, collection string, filter storage.Filter) (int64, error) {
	f, err := marshalFilter(filter)
	if err != nil {
		return 0, err
	}

	q := fmt.Sprintf(`
DELETE FROM %[1]s
WHERE seq = (
	SELECT seq FROM %[1]s
	WHERE collection = $1 AND body @> $2::jsonb
	ORDER BY seq
	LIMIT 1
)`, s.table)

	result, err := s.db.ExecContext(ctx, q, collection, f)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", collection, err)
	}
	return result.RowsAffected()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func marshalFilter(filter storage.Filter) ([]byte, error) {
	if filter == nil {
		filter = storage.Filter{}
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal filter: %w", err)
	}
	return b, nil
}

func decode(body []byte) (storage.Document, error) {
	var doc storage.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}
