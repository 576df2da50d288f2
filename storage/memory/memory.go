// Package memory provides a thread-safe in-memory implementation of storage.Store.
package memory

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/meseriasii/meseriasii/storage"
)

// Store is a thread-safe in-memory implementation of storage.Store.
// Suitable for testing and single-process use cases. Documents are held
// as marshaled JSON so reads never alias caller data.
type Store struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

var _ storage.Store = (*Store)(nil)

// NewStore creates a new empty in-memory Store.
func NewStore() *Store {
	return &Store{data: make(map[string]map[string][]byte)}
}

func (s *Store) Add(collection string, doc any) (string, error) {
	id := uuid.NewString()
	if err := s.Put(collection, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Put(collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[collection]; !ok {
		s.data[collection] = make(map[string][]byte)
	}
	s.data[collection][id] = data
	return nil
}

func (s *Store) Get(collection, id string, out any) error {
	s.mu.RLock()
	data, ok := s.data[collection][id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, storage.ErrNotFound)
	}
	return json.Unmarshal(data, out)
}

func (s *Store) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[collection][id]; !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, storage.ErrNotFound)
	}
	delete(s.data[collection], id)
	return nil
}

func (s *Store) ForEach(collection string, fn func(id string, data []byte) error) error {
	s.mu.RLock()
	ids := make([]string, 0, len(s.data[collection]))
	for id := range s.data[collection] {
		ids = append(ids, id)
	}
	// Snapshot the documents so the callback runs without the lock held.
	docs := make(map[string][]byte, len(ids))
	for _, id := range ids {
		docs[id] = s.data[collection][id]
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	for _, id := range ids {
		if err := fn(id, docs[id]); err != nil {
			return err
		}
	}
	return nil
}
