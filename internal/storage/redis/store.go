// Package redis implements storage.Store on Redis. Each document is a JSON
// string under <prefix>:<collection>:doc:<seq>; a sorted set per collection
// scored by seq keeps insertion order.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/apexforge/studio-backend/internal/storage"
)

type Store struct {
	client *redis.Client
	prefix string

	// beforeExec runs between reading a watched document and committing
	// its update. Tests use it to interleave a concurrent write.
	beforeExec func(key string)
}

// Open parses a redis:// URL, connects and pings.
func Open(ctx context.Context, url, prefix string) (*Store, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(client, prefix), nil
}

func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "studio"
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) seqKey(collection string) string {
	return s.prefix + ":" + collection + ":seq"
}

func (s *Store) indexKey(collection string) string {
	return s.prefix + ":" + collection + ":idx"
}

func (s *Store) docKey(collection string, seq int64) string {
	return s.prefix + ":" + collection + ":doc:" + strconv.FormatInt(seq, 10)
}

func (s *Store) InsertOne(ctx context.Context, collection string, doc storage.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	seq, err := s.client.Incr(ctx, s.seqKey(collection)).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate sequence: %w", err)
	}
	key := s.docKey(collection, seq)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		pipe.ZAdd(ctx, s.indexKey(collection), redis.Z{Score: float64(seq), Member: key})
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

type entry struct {
	key string
	doc storage.Document
}

// scan loads every document of a collection in insertion order.
func (s *Store) scan(ctx context.Context, collection string) ([]entry, error) {
	keys, err := s.client.ZRange(ctx, s.indexKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}

	out := make([]entry, 0, len(keys))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a document: removed between ZRANGE and MGET
			continue
		}
		doc, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, entry{key: keys[i], doc: doc})
	}
	return out, nil
}

func (s *Store) first(ctx context.Context, collection string, filter storage.Filter) (*entry, error) {
	entries, err := s.scan(ctx, collection)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if storage.Match(entries[i].doc, filter) {
			return &entries[i], nil
		}
	}
	return nil, nil
}

func (s *Store) FindOne(ctx context.Context, collection string, filter storage.Filter) (storage.Document, error) {
	e, err := s.first(ctx, collection, filter)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, storage.ErrNoDocument
	}
	return e.doc, nil
}

func (s *Store) FindMany(ctx context.Context, collection string, filter storage.Filter, sort *storage.Sort) ([]storage.Document, error) {
	entries, err := s.scan(ctx, collection)
	if err != nil {
		return nil, err
	}

	out := make([]storage.Document, 0, len(entries))
	for _, e := range entries {
		if storage.Match(e.doc, filter) {
			out = append(out, e.doc)
		}
	}
	storage.SortDocuments(out, sort)
	return out, nil
}

// maxUpdateAttempts bounds re-application of an update whose watched key
// was written concurrently. The later write wins.
const maxUpdateAttempts = 5

func (s *Store) UpdateOne(ctx context.Context, collection string, filter storage.Filter, set storage.Document) (int64, error) {
	e, err := s.first(ctx, collection, filter)
	if err != nil || e == nil {
		return 0, err
	}

	for attempt := 1; ; attempt++ {
		matched, err := s.updateKey(ctx, e.key, filter, set)
		if errors.Is(err, redis.TxFailedErr) && attempt < maxUpdateAttempts {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("update %s: %w", collection, err)
		}
		return matched, nil
	}
}

// updateKey merges set into the document at key under WATCH. It fails with
// redis.TxFailedErr when the key changes before EXEC.
func (s *Store) updateKey(ctx context.Context, key string, filter storage.Filter, set storage.Document) (int64, error) {
	var matched int64
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		doc, err := decode(raw)
		if err != nil {
			return err
		}
		if !storage.Match(doc, filter) {
			return nil
		}
		for k, v := range set {
			doc[k] = v
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		if s.beforeExec != nil {
			s.beforeExec(key)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err == nil {
			matched = 1
		}
		return err
	}, key)
	return matched, err
}

func (s *Store) DeleteOne(ctx context.Context, collection string, filter storage.Filter) (int64, error) {
	e, err := s.first(ctx, collection, filter)
	if err != nil || e == nil {
		return 0, err
	}

	var del *redis.IntCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, e.key)
		pipe.ZRem(ctx, s.indexKey(collection), e.key)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", collection, err)
	}
	return del.Val(), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func decode(raw string) (storage.Document, error) {
	var doc storage.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}
