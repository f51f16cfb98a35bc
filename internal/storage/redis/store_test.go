package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexforge/studio-backend/internal/storage"
)

func setupRedisStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, "test"), mr
}

func TestStore_InsertAndFind(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertOne(ctx, "projects", storage.Document{"id": "a", "title": "Alpha"}))
	require.NoError(t, store.InsertOne(ctx, "projects", storage.Document{"id": "b", "title": "Beta"}))

	assert.True(t, mr.Exists("test:projects:doc:1"))
	assert.True(t, mr.Exists("test:projects:doc:2"))

	doc, err := store.FindOne(ctx, "projects", storage.Filter{"id": "b"})
	require.NoError(t, err)
	assert.Equal(t, "Beta", doc.String("title"))

	_, err = store.FindOne(ctx, "projects", storage.Filter{"id": "c"})
	assert.ErrorIs(t, err, storage.ErrNoDocument)

	docs, err := store.FindMany(ctx, "projects", nil, nil)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].String("id"))
	assert.Equal(t, "b", docs[1].String("id"))
}

func TestStore_FindManySorted(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertOne(ctx, "inquiries", storage.Document{"id": "old", "created_at": "2024-01-01T00:00:00.000000Z"}))
	require.NoError(t, store.InsertOne(ctx, "inquiries", storage.Document{"id": "new", "created_at": "2024-06-01T00:00:00.000000Z"}))

	docs, err := store.FindMany(ctx, "inquiries", nil, &storage.Sort{Field: "created_at", Desc: true})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "new", docs[0].String("id"))
	assert.Equal(t, "old", docs[1].String("id"))
}

func TestStore_UpdateOne(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertOne(ctx, "projects", storage.Document{"id": "a", "title": "Alpha", "year": "2023"}))

	n, err := store.UpdateOne(ctx, "projects", storage.Filter{"id": "a"}, storage.Document{"title": "Renamed"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	doc, err := store.FindOne(ctx, "projects", storage.Filter{"id": "a"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", doc.String("title"))
	assert.Equal(t, "2023", doc.String("year"))

	n, err = store.UpdateOne(ctx, "projects", storage.Filter{"id": "missing"}, storage.Document{"title": "x"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestStore_UpdateOneConcurrentWrite(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertOne(ctx, "projects", storage.Document{"id": "a", "title": "Alpha", "year": "2023"}))

	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { other.Close() })

	calls := 0
	store.beforeExec = func(key string) {
		calls++
		if calls == 1 {
			require.NoError(t, other.Set(ctx, key, `{"id":"a","title":"Other","year":"1999"}`, 0).Err())
		}
	}

	n, err := store.UpdateOne(ctx, "projects", storage.Filter{"id": "a"}, storage.Document{"title": "Renamed"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, 2, calls)

	doc, err := store.FindOne(ctx, "projects", storage.Filter{"id": "a"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", doc.String("title"))
	assert.Equal(t, "1999", doc.String("year"))
}

func TestStore_UpdateOneGivesUpUnderConstantContention(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertOne(ctx, "projects", storage.Document{"id": "a", "title": "Alpha"}))

	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { other.Close() })

	calls := 0
	store.beforeExec = func(key string) {
		calls++
		require.NoError(t, other.Set(ctx, key, `{"id":"a","title":"Other"}`, 0).Err())
	}

	_, err := store.UpdateOne(ctx, "projects", storage.Filter{"id": "a"}, storage.Document{"title": "Renamed"})
	assert.ErrorIs(t, err, redis.TxFailedErr)
	assert.Equal(t, maxUpdateAttempts, calls)
}

func TestStore_DeleteOne(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertOne(ctx, "projects", storage.Document{"id": "a"}))

	n, err := store.DeleteOne(ctx, "projects", storage.Filter{"id": "a"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.False(t, mr.Exists("test:projects:doc:1"))

	n, err = store.DeleteOne(ctx, "projects", storage.Filter{"id": "a"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	docs, err := store.FindMany(ctx, "projects", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestStore_PingFailsWhenServerDown(t *testing.T) {
	store, mr := setupRedisStore(t)

	require.NoError(t, store.Ping(context.Background()))
	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
