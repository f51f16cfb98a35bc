package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexforge/studio-backend/internal/storage"
)

// jsonArg matches a JSONB argument by value rather than by byte layout.
type jsonArg struct{ want map[string]any }

func (a jsonArg) Match(v driver.Value) bool {
	var raw []byte
	switch tv := v.(type) {
	case []byte:
		raw = tv
	case string:
		raw = []byte(tv)
	default:
		return false
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		return false
	}
	return reflect.DeepEqual(a.want, got)
}

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return New(db, "studio"), mock, db
}

func TestStore_EnsureSchema(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CREATE SCHEMA IF NOT EXISTS "studio"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "studio".documents`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE INDEX IF NOT EXISTS documents_body_gin`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InsertOne(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "studio".documents (collection, body)`)).
		WithArgs("projects", jsonArg{want: map[string]any{"id": "p1", "title": "Loft"}}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.InsertOne(context.Background(), "projects", storage.Document{"id": "p1", "title": "Loft"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindOne(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	t.Run("returns the document", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT body FROM "studio".documents`)).
			WithArgs("projects", jsonArg{want: map[string]any{"id": "p1"}}).
			WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"id":"p1","title":"Loft"}`)))

		doc, err := store.FindOne(context.Background(), "projects", storage.Filter{"id": "p1"})
		require.NoError(t, err)
		assert.Equal(t, "Loft", doc.String("title"))
	})

	t.Run("maps no rows to ErrNoDocument", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT body FROM "studio".documents`)).
			WithArgs("projects", jsonArg{want: map[string]any{"id": "missing"}}).
			WillReturnRows(sqlmock.NewRows([]string{"body"}))

		_, err := store.FindOne(context.Background(), "projects", storage.Filter{"id": "missing"})
		assert.ErrorIs(t, err, storage.ErrNoDocument)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindMany(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	t.Run("storage order without sort", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY seq`)).
			WithArgs("projects", jsonArg{want: map[string]any{}}).
			WillReturnRows(sqlmock.NewRows([]string{"body"}).
				AddRow([]byte(`{"id":"a"}`)).
				AddRow([]byte(`{"id":"b"}`)))

		docs, err := store.FindMany(context.Background(), "projects", nil, nil)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a", docs[0].String("id"))
		assert.Equal(t, "b", docs[1].String("id"))
	})

	t.Run("sorted by field descending", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY body->>$3 DESC, seq`)).
			WithArgs("inquiries", jsonArg{want: map[string]any{}}, "created_at").
			WillReturnRows(sqlmock.NewRows([]string{"body"}).
				AddRow([]byte(`{"id":"new"}`)).
				AddRow([]byte(`{"id":"old"}`)))

		docs, err := store.FindMany(context.Background(), "inquiries", nil, &storage.Sort{Field: "created_at", Desc: true})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "new", docs[0].String("id"))
	})

	t.Run("propagates query errors", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT body FROM "studio".documents`)).
			WillReturnError(errors.New("connection reset"))

		_, err := store.FindMany(context.Background(), "projects", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateOne(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "studio".documents SET body = body || $3::jsonb`)).
		WithArgs("projects", jsonArg{want: map[string]any{"id": "p1"}}, jsonArg{want: map[string]any{"title": "New"}}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "studio".documents`)).
		WithArgs("projects", jsonArg{want: map[string]any{"id": "nope"}}, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := store.UpdateOne(context.Background(), "projects", storage.Filter{"id": "p1"}, storage.Document{"title": "New"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = store.UpdateOne(context.Background(), "projects", storage.Filter{"id": "nope"}, storage.Document{"title": "New"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteOne(t *testing.T) {
	store, mock, db := setupStore(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "studio".documents`)).
		WithArgs("inquiries", jsonArg{want: map[string]any{"id": "i1"}}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := store.DeleteOne(context.Background(), "inquiries", storage.Filter{"id": "i1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, mock.ExpectationsWereMet())
}
