/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sequence

import (
	"context"
	"sync"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/sethvargo/go-envconfig"
)

// Key identifies one participant's sequence within one workshop phase.
type Key struct {
	Workshop string
	User     string
	Phase    string
}

// Sequence is the cached viewing order for one key.
type Sequence struct {
	// ID is assigned on creation and survives extends; a Replace mints a
	// new one.
	ID string

	// UserID is the participant the order belongs to.
	UserID string

	// Items is the pool snapshot in viewing order.
	Items []string

	// CreatedAt is when the sequence was first assigned.
	CreatedAt time.Time

	// UpdatedAt is when the sequence last changed.
	UpdatedAt time.Time
}

// StoreConfig carries the cache tuning for a Store.
type StoreConfig struct {
	// TTL is how long an untouched sequence stays cached. Reads refresh it.
	TTL time.Duration `env:"SEQUENCE_CACHE_TTL,default=24h"`
}

// Store caches one Sequence per key and serializes read-then-write per key,
// so two concurrent pool updates for the same participant can never
// interleave into an order with duplicated or dropped items.
type Store struct {
	cache *ttlcache.Cache[Key, *Sequence]

	mu    sync.Mutex
	locks map[Key]*sync.Mutex

	now func() time.Time
}

// NewStore creates a store with the given config and starts its expiry loop.
// Call Stop when done.
func NewStore(cfg StoreConfig) *Store {
	cache := ttlcache.New(
		ttlcache.WithTTL[Key, *Sequence](cfg.TTL),
	)
	go cache.Start()
	return &Store{
		cache: cache,
		locks: make(map[Key]*sync.Mutex),
		now:   time.Now,
	}
}

// NewStoreFromEnv creates a store configured from SEQUENCE_* environment
// variables.
func NewStoreFromEnv(ctx context.Context) (*Store, error) {
	var cfg StoreConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return NewStore(cfg), nil
}

// Stop halts the expiry loop.
func (s *Store) Stop() {
	s.cache.Stop()
}

// GetOrCreate returns the cached sequence for the key, deriving and caching
// it on first request.
func (s *Store) GetOrCreate(ctx context.Context, key Key, pool []string) []string {
	lock := s.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	if item := s.cache.Get(key); item != nil {
		return copyItems(item.Value().Items)
	}
	return s.create(ctx, key, pool)
}

// OnPoolChanged reconciles the cached sequence with an updated pool for the
// same round: already-served positions keep their order, new items land at
// the end in the user's own permutation. Absent any cached sequence it
// behaves like GetOrCreate.
func (s *Store) OnPoolChanged(ctx context.Context, key Key, newPool []string) []string {
	lock := s.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	item := s.cache.Get(key)
	if item == nil {
		return s.create(ctx, key, newPool)
	}
	seq := item.Value()
	grown := len(newPool) - len(seq.Items)
	seq.Items = Extend(key.User, seq.Items, newPool)
	seq.UpdatedAt = s.now()
	s.cache.Set(key, seq, ttlcache.DefaultTTL)

	clog.FromContext(ctx).With(
		"workshop", key.Workshop,
		"user", key.User,
		"phase", key.Phase,
		"sequence_id", seq.ID,
	).Info("Extended sequence", "delta", grown, "items", len(seq.Items))
	return copyItems(seq.Items)
}

// Replace discards any cached sequence and derives a fresh one. Called only
// on an explicit round transition, never inferred from pool contents.
func (s *Store) Replace(ctx context.Context, key Key, pool []string) []string {
	lock := s.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	s.cache.Delete(key)
	return s.create(ctx, key, pool)
}

// Get returns the cached sequence metadata, if present.
func (s *Store) Get(key Key) (*Sequence, bool) {
	item := s.cache.Get(key)
	if item == nil {
		return nil, false
	}
	seq := item.Value()
	return &Sequence{
		ID:        seq.ID,
		UserID:    seq.UserID,
		Items:     copyItems(seq.Items),
		CreatedAt: seq.CreatedAt,
		UpdatedAt: seq.UpdatedAt,
	}, true
}

// create derives and caches a fresh sequence. Callers hold the key lock.
func (s *Store) create(ctx context.Context, key Key, pool []string) []string {
	now := s.now()
	seq := &Sequence{
		ID:        uuid.NewString(),
		UserID:    key.User,
		Items:     For(key.User, pool),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.cache.Set(key, seq, ttlcache.DefaultTTL)

	clog.FromContext(ctx).With(
		"workshop", key.Workshop,
		"user", key.User,
		"phase", key.Phase,
		"sequence_id", seq.ID,
	).Info("Assigned sequence", "items", len(seq.Items))
	return copyItems(seq.Items)
}

func (s *Store) lockFor(key Key) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[key] == nil {
		s.locks[key] = &sync.Mutex{}
	}
	return s.locks[key]
}

func copyItems(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
