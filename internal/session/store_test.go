// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinemaswipe/internal/metrics"
	"github.com/tomtom215/cinemaswipe/internal/models"
)

// mapLookup resolves ids from a fixed set of movies.
type mapLookup map[int]models.Movie

func (l mapLookup) Get(id int) (models.Movie, bool) {
	m, ok := l[id]
	return m, ok
}

func lookupFor(f *fakeRecommender) mapLookup {
	l := make(mapLookup)
	for _, m := range f.catalog {
		l[m.ID] = m
	}
	for _, m := range f.refill {
		l[m.ID] = m
	}
	return l
}

func newTestStore(t *testing.T, ttl time.Duration) *BadgerStore {
	t.Helper()
	store, err := OpenBadgerStore("", ttl)
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// failingStore fails every operation.
type failingStore struct {
	mu    sync.Mutex
	saves int
}

var errStoreDown = errors.New("store down")

func (f *failingStore) Save(context.Context, Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	return errStoreDown
}

func (f *failingStore) Load(context.Context, string) (Snapshot, error) {
	return Snapshot{}, errStoreDown
}

func (f *failingStore) Delete(context.Context, string) error { return errStoreDown }

func (f *failingStore) Close() error { return nil }

// gatedStore holds the first Save after arm until release is closed.
type gatedStore struct {
	Store
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func newGatedStore(inner Store) *gatedStore {
	return &gatedStore{Store: inner, entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedStore) Save(ctx context.Context, snap Snapshot) error {
	if g.armed.CompareAndSwap(true, false) {
		close(g.entered)
		<-g.release
	}
	return g.Store.Save(ctx, snap)
}

func TestBadgerStore_SaveLoadDelete(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	snap := Snapshot{
		ID:           "abc",
		Preferences:  models.Preferences{Genres: []string{"Drama"}, Era: models.EraClassic, Mood: "dark"},
		Queue:        []int{3, 4, 5},
		CurrentIndex: 1,
		Liked:        []int{1},
		Disliked:     []int{2},
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 1, 2, 3, 5, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !slices.Equal(got.Queue, snap.Queue) || got.CurrentIndex != 1 ||
		!slices.Equal(got.Liked, snap.Liked) || !slices.Equal(got.Disliked, snap.Disliked) {
		t.Errorf("Load() = %+v, want %+v", got, snap)
	}
	if !got.CreatedAt.Equal(snap.CreatedAt) || got.Preferences.Era != models.EraClassic {
		t.Errorf("Load() lost fields: %+v", got)
	}

	if n, err := store.Count(ctx); err != nil || n != 1 {
		t.Errorf("Count() = %d, %v; want 1", n, err)
	}

	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load(ctx, "abc"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Load() after delete error = %v, want ErrSessionNotFound", err)
	}
	if err := store.Delete(ctx, "abc"); err != nil {
		t.Errorf("Delete() of missing id error = %v", err)
	}
	if err := store.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
}

func TestBadgerStore_TTL(t *testing.T) {
	// Badger TTLs have one-second resolution.
	store := newTestStore(t, time.Second)
	ctx := context.Background()

	if err := store.Save(ctx, Snapshot{ID: "short"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	time.Sleep(2100 * time.Millisecond)

	if _, err := store.Load(ctx, "short"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Load() of expired snapshot error = %v, want ErrSessionNotFound", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	f := newFake(6)
	s := New("snap", models.Preferences{Genres: []string{"Drama"}}, f)
	if _, err := s.Swipe(true); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Swipe(false); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	restored, err := Restore(snap, f, lookupFor(f))
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	want, got := s.State(), restored.State()
	if got.CurrentIndex != want.CurrentIndex || got.QueueLength != want.QueueLength ||
		got.LikedCount != 1 || got.DislikedCount != 1 {
		t.Errorf("restored state = %+v, want %+v", got, want)
	}
	if got.Current == nil || want.Current == nil || got.Current.ID != want.Current.ID {
		t.Errorf("restored current = %v, want %v", got.Current, want.Current)
	}
	if f.initials != 1 {
		t.Errorf("Restore() must not call the scorer, initials = %d", f.initials)
	}
}

func TestRestore_Invalid(t *testing.T) {
	f := newFake(3)
	tests := []struct {
		name string
		snap Snapshot
	}{
		{"unknown queue movie", Snapshot{ID: "x", Queue: []int{1, 999}}},
		{"unknown liked movie", Snapshot{ID: "x", Queue: []int{1}, Liked: []int{999}}},
		{"index past queue", Snapshot{ID: "x", Queue: []int{1}, CurrentIndex: 2}},
		{"negative index", Snapshot{ID: "x", Queue: []int{1}, CurrentIndex: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Restore(tt.snap, f, lookupFor(f)); err == nil {
				t.Error("Restore() error = nil, want error")
			}
		})
	}

	_, err := Restore(Snapshot{ID: "x", Queue: []int{42}}, f, lookupFor(f))
	if !errors.Is(err, ErrStaleSnapshot) {
		t.Errorf("Restore() error = %v, want ErrStaleSnapshot", err)
	}
}

func TestManager_RestoresAfterRestart(t *testing.T) {
	f := newFake(10)
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	first := NewManager(f, DefaultConfig(), nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	s, err := first.Create(ctx, validAnswers)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := first.Swipe(ctx, s.ID(), true); err != nil {
		t.Fatalf("Swipe() error = %v", err)
	}
	before := s.State()

	second := NewManager(f, DefaultConfig(), nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	restored, err := second.Get(s.ID())
	if err != nil {
		t.Fatalf("Get() after restart error = %v", err)
	}
	after := restored.State()
	if after.LikedCount != 1 || after.CurrentIndex != before.CurrentIndex || after.Current.ID != before.Current.ID {
		t.Errorf("restored state = %+v, want %+v", after, before)
	}
	if second.Len() != 1 {
		t.Errorf("Len() = %d, want 1", second.Len())
	}

	if _, err := second.Swipe(ctx, s.ID(), false); err != nil {
		t.Fatalf("Swipe() on restored session error = %v", err)
	}
	snap, err := store.Load(ctx, s.ID())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(snap.Liked) != 1 || len(snap.Disliked) != 1 {
		t.Errorf("stored lists = %v/%v, want one each", snap.Liked, snap.Disliked)
	}
}

func TestManager_RestoresAfterCapacityEviction(t *testing.T) {
	f := newFake(10)
	store := newTestStore(t, time.Hour)
	m := NewManager(f, Config{TTL: time.Minute, MaxSessions: 1}, nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	ctx := context.Background()

	evicted, _ := m.Create(ctx, validAnswers)
	if _, err := m.Create(ctx, validAnswers); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := m.Get(evicted.ID()); err != nil {
		t.Errorf("Get() of evicted session error = %v, want restore", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestManager_DeleteRemovesSnapshot(t *testing.T) {
	f := newFake(5)
	store := newTestStore(t, time.Hour)
	m := NewManager(f, DefaultConfig(), nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	ctx := context.Background()

	s, _ := m.Create(ctx, validAnswers)
	if err := m.Delete(ctx, s.ID()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load(ctx, s.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("snapshot survived delete: %v", err)
	}
	if _, err := m.Get(s.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrSessionNotFound", err)
	}
}

func TestManager_SweepReportsStoreEntries(t *testing.T) {
	f := newFake(5)
	store := newTestStore(t, time.Hour)
	m := NewManager(f, DefaultConfig(), nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	ctx := context.Background()

	for range 3 {
		if _, err := m.Create(ctx, validAnswers); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	m.Sweep()
	if got := testutil.ToFloat64(metrics.SessionStoreEntries); got != 3 {
		t.Errorf("session_store_entries = %v, want 3", got)
	}
}

func TestManager_StaleSnapshotDiscarded(t *testing.T) {
	f := newFake(5)
	store := newTestStore(t, time.Hour)
	ctx := context.Background()
	if err := store.Save(ctx, Snapshot{ID: "stale", Queue: []int{777}}); err != nil {
		t.Fatal(err)
	}

	m := NewManager(f, DefaultConfig(), nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	if _, err := m.Get("stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() error = %v, want ErrSessionNotFound", err)
	}
	if _, err := store.Load(ctx, "stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("stale snapshot should be deleted, Load() error = %v", err)
	}
}

func TestManager_StoreFailureIsNotFatal(t *testing.T) {
	f := newFake(5)
	store := &failingStore{}
	m := NewManager(f, DefaultConfig(), nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	ctx := context.Background()

	s, err := m.Create(ctx, validAnswers)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := m.Swipe(ctx, s.ID(), true); err != nil {
		t.Fatalf("Swipe() error = %v", err)
	}
	if store.saves != 2 {
		t.Errorf("saves = %d, want 2", store.saves)
	}
	if _, err := m.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() with broken store error = %v, want ErrSessionNotFound", err)
	}
	if err := m.Delete(ctx, s.ID()); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestManager_DeleteDuringSwipeSaveStaysDeleted(t *testing.T) {
	f := newFake(5)
	store := newGatedStore(newTestStore(t, time.Hour))
	m := NewManager(f, DefaultConfig(), nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	ctx := context.Background()

	s, err := m.Create(ctx, validAnswers)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	id := s.ID()

	store.armed.Store(true)
	swipeDone := make(chan error, 1)
	go func() {
		_, err := m.Swipe(ctx, id, true)
		swipeDone <- err
	}()
	<-store.entered

	deleteDone := make(chan error, 1)
	go func() { deleteDone <- m.Delete(ctx, id) }()
	time.Sleep(20 * time.Millisecond)
	close(store.release)

	for name, ch := range map[string]chan error{"Swipe": swipeDone, "Delete": deleteDone} {
		select {
		case err := <-ch:
			if err != nil {
				t.Errorf("%s() error = %v", name, err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("%s() did not return", name)
		}
	}

	if _, err := store.Load(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("snapshot written after delete, Load() error = %v", err)
	}
	if _, err := m.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrSessionNotFound", err)
	}
	if err := m.Delete(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Delete() error = %v, want ErrSessionNotFound", err)
	}
}

func TestManager_ConcurrentSwipesStoreLatestState(t *testing.T) {
	f := newFake(10)
	store := newGatedStore(newTestStore(t, time.Hour))
	m := NewManager(f, DefaultConfig(), nil, zerolog.Nop(), WithStore(store, lookupFor(f)))
	ctx := context.Background()

	s, err := m.Create(ctx, validAnswers)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	id := s.ID()

	store.armed.Store(true)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, err := m.Swipe(ctx, id, true); err != nil {
			t.Errorf("Swipe(true) error = %v", err)
		}
	}()
	<-store.entered
	go func() {
		defer wg.Done()
		if _, err := m.Swipe(ctx, id, false); err != nil {
			t.Errorf("Swipe(false) error = %v", err)
		}
	}()
	time.Sleep(20 * time.Millisecond)
	close(store.release)
	wg.Wait()

	snap, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	live := s.State()
	if len(snap.Liked) != live.LikedCount || len(snap.Disliked) != live.DislikedCount ||
		snap.CurrentIndex != live.CurrentIndex {
		t.Errorf("stored liked/disliked/index = %d/%d/%d, live = %d/%d/%d",
			len(snap.Liked), len(snap.Disliked), snap.CurrentIndex,
			live.LikedCount, live.DislikedCount, live.CurrentIndex)
	}
	if live.LikedCount+live.DislikedCount != 2 {
		t.Errorf("live swipes = %d, want 2", live.LikedCount+live.DislikedCount)
	}
}
