// Package bookmarks persists the user's saved titles. The whole collection
// lives under a single key as one JSON array, and every operation degrades to
// "empty collection / no-op" on storage faults; saving a bookmark is a
// convenience feature and must never interrupt the caller.
package bookmarks

import (
	"database/sql"
	"encoding/json"
	"log"
	"sync"

	"showdb/internal/database"
	"showdb/internal/types"
)

// StorageKey is the single key the collection is stored under.
const StorageKey = "entertainment_app_bookmarks"

// Store holds the bookmark collection. The mutex serializes read-modify-write
// cycles so the (id, media_type) uniqueness invariant holds even with
// concurrent writers.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// List returns all bookmarks in insertion order. A missing or corrupt stored
// value yields an empty slice, never an error.
func (s *Store) List() []types.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Contains reports whether a bookmark with the exact (id, kind) pair exists.
func (s *Store) Contains(id int, kind types.MediaType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsPair(s.load(), id, kind)
}

// Add appends the bookmark unless its (id, kind) pair is already present.
func (s *Store) Add(b types.Bookmark) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	if containsPair(items, b.ID, b.MediaType) {
		return
	}
	s.save(append(items, b))
}

// Remove rewrites the collection without any entry matching the pair. Removing
// an absent pair is a no-op.
func (s *Store) Remove(id int, kind types.MediaType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	kept := items[:0]
	for _, b := range items {
		if !(b.ID == id && b.MediaType == kind) {
			kept = append(kept, b)
		}
	}
	s.save(kept)
}

func containsPair(items []types.Bookmark, id int, kind types.MediaType) bool {
	for _, b := range items {
		if b.ID == id && b.MediaType == kind {
			return true
		}
	}
	return false
}

func (s *Store) load() []types.Bookmark {
	value, err := database.GetValue(s.db, StorageKey)
	if err != nil {
		log.Printf("bookmarks: failed to read collection: %v", err)
		return []types.Bookmark{}
	}
	if value == "" {
		return []types.Bookmark{}
	}

	var items []types.Bookmark
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		log.Printf("bookmarks: stored collection is not valid JSON, treating as empty: %v", err)
		return []types.Bookmark{}
	}
	return items
}

func (s *Store) save(items []types.Bookmark) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("bookmarks: failed to encode collection: %v", err)
		return
	}
	if err := database.SetValue(s.db, StorageKey, string(data)); err != nil {
		log.Printf("bookmarks: failed to write collection: %v", err)
	}
}
