// Package memory is an in-process storage.Store used for local development
// and tests. Data does not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/apexforge/studio-backend/internal/storage"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]storage.Document
}

func New() *Store {
	return &Store{collections: make(map[string][]storage.Document)}
}

func (s *Store) InsertOne(_ context.Context, collection string, doc storage.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[collection] = append(s.collections[collection], doc.Clone())
	return nil
}

func (s *Store) FindOne(_ context.Context, collection string, filter storage.Filter) (storage.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if storage.Match(doc, filter) {
			return doc.Clone(), nil
		}
	}
	return nil, storage.ErrNoDocument
}

func (s *Store) FindMany(_ context.Context, collection string, filter storage.Filter, sort *storage.Sort) ([]storage.Document, error) {
	s.mu.RLock()
	out := make([]storage.Document, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		if storage.Match(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	s.mu.RUnlock()

	storage.SortDocuments(out, sort)
	return out, nil
}

func (s *Store) UpdateOne(_ context.Context, collection string, filter storage.Filter, set storage.Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if storage.Match(doc, filter) {
			for k, v := range set {
				doc[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (s *Store) DeleteOne(_ context.Context, collection string, filter storage.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if storage.Match(doc, filter) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
