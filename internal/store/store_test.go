package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestPutGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	rec := Record{ID: "m1", Title: "Dune", Genre: "Sci-Fi"}
	if err := m.Put(ctx, rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := m.Get(ctx, "m1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != rec {
		t.Errorf("Get = %+v, want %+v", got, rec)
	}
}

func TestGetMissing(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "nope")
	if err != ErrNotFound {
		t.Errorf("Get err = %v, want ErrNotFound", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Put(ctx, Record{ID: "m1", Title: "Alien", Genre: "Horror"})
	m.Put(ctx, Record{ID: "m1", Title: "Aliens", Genre: "Action"})

	got, err := m.Get(ctx, "m1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Aliens" || got.Genre != "Action" {
		t.Errorf("expected last write to win, got %+v", got)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestDeleteIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Put(ctx, Record{ID: "m1", Title: "Heat", Genre: "Crime"})

	removed, err := m.Delete(ctx, "m1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Error("expected first delete to remove the record")
	}

	// Absent ids report false on every call, never an error.
	for i := 0; i < 3; i++ {
		removed, err = m.Delete(ctx, "m1")
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if removed {
			t.Error("expected delete of absent id to report false")
		}
	}
}

func TestReplaceNeverCreates(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	replaced, err := m.Replace(ctx, Record{ID: "m1", Title: "Dune"})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if replaced {
		t.Error("expected replace of absent id to report false")
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0 after replace of absent id", m.Len())
	}
}

func TestReplaceOverwrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Put(ctx, Record{ID: "m1", Title: "Dune", Genre: "Sci-Fi"})

	replaced, err := m.Replace(ctx, Record{ID: "m1", Title: "Dune 2", Genre: "Sci-Fi"})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if !replaced {
		t.Error("expected replace of present id to report true")
	}

	got, _ := m.Get(ctx, "m1")
	if got.Title != "Dune 2" {
		t.Errorf("Get = %+v, want overwritten record", got)
	}
}

func TestDeleteNotUndoneByConcurrentReplace(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Put(ctx, Record{ID: "m1", Title: "Dune", Genre: "Sci-Fi"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			m.Replace(ctx, Record{ID: "m1", Title: "Dune 2", Genre: "Sci-Fi"})
		}
	}()

	removed, err := m.Delete(ctx, "m1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Fatal("expected delete to remove the record")
	}

	// Replace never creates, so once the delete has returned the record
	// must stay gone no matter how the replacer is scheduled.
	for i := 0; i < 1000; i++ {
		if _, err := m.Get(ctx, "m1"); err != ErrNotFound {
			t.Fatalf("record resurrected after successful delete (iteration %d)", i)
		}
	}
	<-done

	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}

func TestListCompleteness(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	want := map[string]bool{"a": true, "b": true, "c": true}
	for id := range want {
		m.Put(ctx, Record{ID: id, Title: "t-" + id})
	}

	recs, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != len(want) {
		t.Fatalf("List returned %d records, want %d", len(recs), len(want))
	}

	// Order is unspecified; compare as a set.
	got := make(map[string]bool, len(recs))
	for _, rec := range recs {
		got[rec.ID] = true
	}
	for id := range want {
		if !got[id] {
			t.Errorf("List missing id %q", id)
		}
	}
}

func TestListSnapshotIsolated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Put(ctx, Record{ID: "m1", Title: "Ran"})
	recs, _ := m.List(ctx)

	// Mutating the store after List must not affect the snapshot.
	m.Delete(ctx, "m1")
	if len(recs) != 1 || recs[0].ID != "m1" {
		t.Errorf("snapshot changed after delete: %+v", recs)
	}
}

func TestConcurrentDistinctKeys(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("rec-%d", i)
			if err := m.Put(ctx, Record{ID: id, Title: id}); err != nil {
				t.Errorf("Put %s failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	if m.Len() != n {
		t.Fatalf("Len = %d, want %d", m.Len(), n)
	}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("rec-%d", i)
		if _, err := m.Get(ctx, id); err != nil {
			t.Errorf("Get %s failed: %v", id, err)
		}
	}
}

func TestConcurrentSameKey(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			m.Put(ctx, Record{ID: "shared", Title: fmt.Sprintf("v%d", i)})
		}(i)
		go func() {
			defer wg.Done()
			m.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	// Whichever write won, the record must be intact.
	got, err := m.Get(ctx, "shared")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "shared" || got.Title == "" {
		t.Errorf("record corrupted: %+v", got)
	}
}
