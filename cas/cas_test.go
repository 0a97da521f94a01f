package cas

import (
	"testing"

	"github.com/timewinder-dev/rewinder/interp"
	"github.com/timewinder-dev/rewinder/vm"
)

func snapshotAfter(t *testing.T, ops ...vm.Op) *interp.Snapshot {
	t.Helper()
	in := interp.New()
	in.AddInstructions(ops...)
	if err := in.Run(); err != nil {
		t.Fatalf("running %v: %v", ops, err)
	}
	return in.Snapshot()
}

func TestMemoryCAS_PutRetrieve(t *testing.T) {
	store := NewMemoryCAS()
	snap := snapshotAfter(t, vm.Push(6), vm.Push(7), vm.Mul())

	hash, err := store.Put(snap)
	if err != nil {
		t.Fatalf("Failed to put snapshot: %v", err)
	}
	if !store.Has(hash) {
		t.Errorf("Store should report hash exists")
	}

	got, err := Retrieve[interp.Snapshot](store, hash)
	if err != nil {
		t.Fatalf("Failed to retrieve snapshot: %v", err)
	}
	if len(got.Stack) != 1 || got.Stack[0] != 42 {
		t.Errorf("Retrieved stack is wrong: got %v, want [42]", got.Stack)
	}
	if len(got.History) != 3 {
		t.Errorf("Retrieved history has %d entries, want 3", len(got.History))
	}
}

func TestMemoryCAS_SameContentSameHash(t *testing.T) {
	store := NewMemoryCAS()
	h1, err := store.Put(snapshotAfter(t, vm.Push(1)))
	if err != nil {
		t.Fatal(err)
	}
	h2, err := store.Put(snapshotAfter(t, vm.Push(1)))
	if err != nil {
		t.Fatal(err)
	}
	h3, err := store.Put(snapshotAfter(t, vm.Push(2)))
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Errorf("Identical snapshots hashed differently: %s vs %s", h1, h2)
	}
	if h1 == h3 {
		t.Errorf("Different snapshots share hash %s", h1)
	}
	if store.Len() != 2 {
		t.Errorf("Store should hold 2 entries, got %d", store.Len())
	}
}

func TestMemoryCAS_Missing(t *testing.T) {
	store := NewMemoryCAS()
	if store.Has(Hash(12345)) {
		t.Errorf("Empty store should not have any hash")
	}
	if _, err := Retrieve[interp.Snapshot](store, Hash(12345)); err == nil {
		t.Errorf("Retrieving a missing hash should fail")
	}
}

func TestParseHash(t *testing.T) {
	h := Hash(0xdeadbeef)
	if h.String() != "0x00000000deadbeef" {
		t.Errorf("unexpected String(): %s", h)
	}
	for _, s := range []string{h.String(), "deadbeef", "0XDEADBEEF", " 0xdeadbeef "} {
		got, err := ParseHash(s)
		if err != nil {
			t.Fatalf("ParseHash(%q): %v", s, err)
		}
		if got != h {
			t.Errorf("ParseHash(%q) = %s, want %s", s, got, h)
		}
	}
	if _, err := ParseHash("not-a-hash"); err == nil {
		t.Errorf("ParseHash should reject garbage")
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	underlying := NewMemoryCAS()
	cache := NewLRUCache(underlying, 2)

	var hashes []Hash
	for i := int32(0); i < 4; i++ {
		h, err := cache.Put(snapshotAfter(t, vm.Push(i)))
		if err != nil {
			t.Fatalf("Failed to put snapshot %d: %v", i, err)
		}
		hashes = append(hashes, h)
	}
	if cache.Len() != 4 {
		t.Errorf("Writes should go through to the underlying store, got %d entries", cache.Len())
	}

	for i, h := range hashes {
		got, err := Retrieve[interp.Snapshot](cache, h)
		if err != nil {
			t.Fatalf("Failed to retrieve snapshot %d: %v", i, err)
		}
		if got.Stack[0] != int32(i) {
			t.Errorf("Snapshot %d has wrong stack %v", i, got.Stack)
		}
	}
	stats := cache.Stats()
	if stats.Size != 2 || stats.MaxSize != 2 {
		t.Errorf("Cache should be full at 2, got %+v", stats)
	}
	if stats.Misses != 4 || stats.Hits != 0 {
		t.Errorf("Expected 4 misses and no hits, got %+v", stats)
	}

	// The two most recent reads are cached.
	if _, err := Retrieve[interp.Snapshot](cache, hashes[3]); err != nil {
		t.Fatal(err)
	}
	if _, err := Retrieve[interp.Snapshot](cache, hashes[0]); err != nil {
		t.Fatal(err)
	}
	stats = cache.Stats()
	if stats.Hits != 1 || stats.Misses != 5 {
		t.Errorf("Expected 1 hit and 5 misses, got %+v", stats)
	}
}

func TestLRUCache_Has(t *testing.T) {
	cache := NewLRUCache(NewMemoryCAS(), 0)
	if cache.Stats().MaxSize != DefaultCacheSize {
		t.Errorf("Zero size should select the default, got %d", cache.Stats().MaxSize)
	}
	hash, err := cache.Put(snapshotAfter(t, vm.Push(42)))
	if err != nil {
		t.Fatalf("Failed to put snapshot: %v", err)
	}
	if !cache.Has(hash) {
		t.Errorf("Cache should report hash exists")
	}
	if cache.Has(Hash(99999)) {
		t.Errorf("Cache should report non-existent hash doesn't exist")
	}
}
