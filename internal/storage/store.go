// Package storage defines the document store the repositories persist
// through, plus helpers shared by the backends.
//
// Documents are flat maps of field name to primitive value. Filters are
// equality matches on top-level fields. Timestamps are stored as fixed-width
// ISO-8601 UTC strings so that lexical and chronological order agree.
package storage

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"
)

// ErrNoDocument is returned by FindOne when nothing matches the filter.
var ErrNoDocument = errors.New("storage: no document")

// TimeLayout is the on-disk format of timestamp fields.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

type Document map[string]any

type Filter map[string]any

// Sort orders FindMany results by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// Store is the record store capability consumed by the repositories.
// Implementations guarantee atomicity of a single insert, update or delete.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc Document) error
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)
	FindMany(ctx context.Context, collection string, filter Filter, sort *Sort) ([]Document, error)
	// UpdateOne sets the given fields on the first matching document and
	// returns the number of matched documents (0 or 1).
	UpdateOne(ctx context.Context, collection string, filter Filter, set Document) (int64, error)
	// DeleteOne removes the first matching document and returns the number
	// of deleted documents (0 or 1).
	DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime accepts TimeLayout as well as any RFC 3339 timestamp, so
// documents written by other tools still load.
func ParseTime(v any) (time.Time, error) {
	switch tv := v.(type) {
	case time.Time:
		return tv.UTC(), nil
	case string:
		t, err := time.Parse(TimeLayout, tv)
		if err != nil {
			t, err = time.Parse(time.RFC3339Nano, tv)
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("parse timestamp %q: %w", tv, err)
		}
		return t.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("parse timestamp: unexpected type %T", v)
	}
}

// String reads a string field, returning "" when absent or not a string.
func (d Document) String(field string) string {
	s, _ := d[field].(string)
	return s
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Match reports whether doc satisfies every equality in filter.
func Match(doc Document, filter Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

func equal(a, b any) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as == bs
	}
	return reflect.DeepEqual(a, b)
}

// SortDocuments orders docs in place by s. Stable, so documents with equal
// keys keep storage order. A nil sort is a no-op.
func SortDocuments(docs []Document, s *Sort) {
	if s == nil || s.Field == "" {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		a := fmt.Sprint(docs[i][s.Field])
		b := fmt.Sprint(docs[j][s.Field])
		if s.Desc {
			return a > b
		}
		return a < b
	})
}
