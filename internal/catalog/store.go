// Package catalog holds the in-memory listing catalog and each user's saved set.
//
// A Store is the single source of truth for listings: every reader and
// writer shares one instance. Listings are bucketed by city; a bucket is
// replaced, never appended in place, so slices handed out earlier stay valid.
// Saved sets are keyed by owner, the signed-in user's email.
package catalog

import (
	"log/slog"
	"sync"

	"github.com/evcraddock/rent-finder/internal/property"
)

// Journal records catalog mutations somewhere durable.
type Journal interface {
	RecordProperty(p property.Property) error
	RecordSaved(owner string, id int64, saved bool) error
}

// Option configures a Store.
type Option func(*Store)

// WithJournal makes the store report every mutation to j.
func WithJournal(j Journal) Option {
	return func(s *Store) { s.journal = j }
}

// WithSaved pre-populates owner's saved set, e.g. when restoring from a journal.
func WithSaved(owner string, ids []int64) Option {
	return func(s *Store) {
		set := s.savedSet(owner)
		for _, id := range ids {
			set.add(id)
		}
	}
}

// savedSet is one owner's bookmarks in the order they were saved.
type savedSet struct {
	members map[int64]struct{}
	order   []int64
}

func (ss *savedSet) has(id int64) bool {
	_, ok := ss.members[id]
	return ok
}

func (ss *savedSet) add(id int64) {
	if ss.has(id) {
		return
	}
	ss.members[id] = struct{}{}
	ss.order = append(ss.order, id)
}

func (ss *savedSet) remove(id int64) {
	delete(ss.members, id)
	for i, v := range ss.order {
		if v == id {
			ss.order = append(ss.order[:i:i], ss.order[i+1:]...)
			return
		}
	}
}

// Store owns the city buckets and the saved sets.
type Store struct {
	mu      sync.RWMutex
	buckets map[property.City][]property.Property
	order   []property.City // cities outside property.Cities, in creation order
	nextID  int64
	saved   map[string]*savedSet
	journal Journal
}

// NewStore creates a store holding props, bucketed by city in the order given.
func NewStore(props []property.Property, opts ...Option) *Store {
	s := &Store{
		buckets: make(map[property.City][]property.Property),
		saved:   make(map[string]*savedSet),
		nextID:  1,
	}

	for _, p := range props {
		s.buckets[p.City] = append(s.buckets[p.City], p.Clone())
		s.trackCity(p.City)
		s.bumpNextID(p.ID)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// PropertiesByCity returns the listings in a city's bucket, oldest first.
// Unknown cities yield an empty slice.
func (s *Store) PropertiesByCity(city property.City) []property.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.buckets[city])
}

// AllProperties returns every listing: the known cities first in their fixed
// order, then any other buckets in the order they were created.
func (s *Store) AllProperties() []property.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allLocked()
}

// PropertyByID returns the first listing with the given ID.
func (s *Store) PropertyByID(id int64) (property.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.findLocked(id)
	if !ok {
		return property.Property{}, false
	}
	return p.Clone(), true
}

// Cities returns the cities that currently have a bucket, in listing order.
func (s *Store) Cities() []property.City {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cities []property.City
	for _, c := range s.cityOrder() {
		if _, ok := s.buckets[c]; ok {
			cities = append(cities, c)
		}
	}
	return cities
}

// IsSaved reports whether id is in owner's saved set.
func (s *Store) IsSaved(owner string, id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.saved[owner]
	return ok && set.has(id)
}

// ToggleSaved removes id from owner's saved set if present, otherwise adds
// it, and reports the new membership. IDs are not checked against the catalog.
func (s *Store) ToggleSaved(owner string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.savedSet(owner)
	saved := !set.has(id)
	if saved {
		set.add(id)
	} else {
		set.remove(id)
	}

	if s.journal != nil {
		if err := s.journal.RecordSaved(owner, id, saved); err != nil {
			slog.Warn("journaling saved toggle", "owner", owner, "id", id, "saved", saved, "error", err)
		}
	}

	return saved
}

// SavedIDs returns owner's saved set in the order ids were saved.
func (s *Store) SavedIDs(owner string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.saved[owner]
	if !ok {
		return []int64{}
	}
	ids := make([]int64, len(set.order))
	copy(ids, set.order)
	return ids
}

// SavedProperties returns owner's saved listings in save order. Saved ids
// that match no listing are skipped.
func (s *Store) SavedProperties(owner string) []property.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.saved[owner]
	if !ok {
		return []property.Property{}
	}
	props := make([]property.Property, 0, len(set.order))
	for _, id := range set.order {
		if p, ok := s.findLocked(id); ok {
			props = append(props, p.Clone())
		}
	}
	return props
}

// AddProperty assigns the next free ID to d, appends it to its city's
// bucket and returns the ID.
func (s *Store) AddProperty(d property.Draft) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(d, s.nextID)
}

// AddPropertyWithID is AddProperty with a caller-chosen ID. The store does not
// check the ID for collisions.
func (s *Store) AddPropertyWithID(d property.Draft, id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(d, id)
}

func (s *Store) addLocked(d property.Draft, id int64) int64 {
	p := d.Build(id)

	old := s.buckets[p.City]
	bucket := make([]property.Property, len(old), len(old)+1)
	copy(bucket, old)
	s.buckets[p.City] = append(bucket, p)

	s.trackCity(p.City)
	s.bumpNextID(id)

	if s.journal != nil {
		if err := s.journal.RecordProperty(p.Clone()); err != nil {
			slog.Warn("journaling listing", "id", id, "error", err)
		}
	}

	return id
}

func (s *Store) allLocked() []property.Property {
	var all []property.Property
	for _, c := range s.cityOrder() {
		all = append(all, cloneAll(s.buckets[c])...)
	}
	if all == nil {
		all = []property.Property{}
	}
	return all
}

func (s *Store) findLocked(id int64) (property.Property, bool) {
	for _, c := range s.cityOrder() {
		for _, p := range s.buckets[c] {
			if p.ID == id {
				return p, true
			}
		}
	}
	return property.Property{}, false
}

func (s *Store) cityOrder() []property.City {
	order := make([]property.City, 0, len(property.Cities)+len(s.order))
	order = append(order, property.Cities...)
	return append(order, s.order...)
}

func (s *Store) trackCity(c property.City) {
	if c.IsValid() {
		return
	}
	for _, o := range s.order {
		if o == c {
			return
		}
	}
	s.order = append(s.order, c)
}

func (s *Store) bumpNextID(id int64) {
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

func (s *Store) savedSet(owner string) *savedSet {
	set, ok := s.saved[owner]
	if !ok {
		set = &savedSet{members: make(map[int64]struct{})}
		s.saved[owner] = set
	}
	return set
}

func cloneAll(props []property.Property) []property.Property {
	out := make([]property.Property, len(props))
	for i, p := range props {
		out[i] = p.Clone()
	}
	return out
}
