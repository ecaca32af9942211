package iavl

import (
	"bytes"
	"testing"
)

func TestCommitStoreGetSet(t *testing.T) {
	s := MockCommitStore()

	k, v := []byte("french"), []byte("fry")
	if err := s.Set(k, v); err != nil {
		t.Fatalf("cannot set: %+v", err)
	}
	got, err := s.Get(k)
	if err != nil {
		t.Fatalf("cannot get: %+v", err)
	}
	if !bytes.Equal(v, got) {
		t.Fatalf("expected %q, got %q", v, got)
	}

	id, err := s.Commit()
	if err != nil {
		t.Fatalf("cannot commit: %+v", err)
	}
	if id.Version != 1 {
		t.Fatalf("expected version 1, got %d", id.Version)
	}
	if len(id.Hash) == 0 {
		t.Fatal("expected non-empty hash")
	}

	// value survives the commit
	got, _ = s.Get(k)
	if !bytes.Equal(v, got) {
		t.Fatalf("expected %q after commit, got %q", v, got)
	}
	latest := s.LatestVersion()
	if latest.Version != id.Version {
		t.Fatalf("latest version %d != commit version %d", latest.Version, id.Version)
	}
}

func TestCommitStoreCacheWrap(t *testing.T) {
	s := MockCommitStore()
	if err := s.Set([]byte("a"), []byte("1")); err != nil {
		t.Fatalf("cannot set: %+v", err)
	}

	// writes on a discarded cache never hit the tree
	cache := s.CacheWrap()
	if err := cache.Set([]byte("b"), []byte("2")); err != nil {
		t.Fatalf("cannot set on cache: %+v", err)
	}
	cache.Discard()
	if has, _ := s.Has([]byte("b")); has {
		t.Fatal("discarded write leaked into the tree")
	}

	// written cache applies all changes
	cache = s.CacheWrap()
	if err := cache.Set([]byte("b"), []byte("2")); err != nil {
		t.Fatalf("cannot set on cache: %+v", err)
	}
	if err := cache.Delete([]byte("a")); err != nil {
		t.Fatalf("cannot delete on cache: %+v", err)
	}
	if err := cache.Write(); err != nil {
		t.Fatalf("cannot write cache: %+v", err)
	}
	if has, _ := s.Has([]byte("a")); has {
		t.Fatal("deleted key still present")
	}
	got, _ := s.Get([]byte("b"))
	if !bytes.Equal(got, []byte("2")) {
		t.Fatalf("expected written value, got %q", got)
	}
}

func TestCommitStoreIterator(t *testing.T) {
	s := MockCommitStore()
	keys := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	for _, k := range keys {
		if err := s.Set(k, k); err != nil {
			t.Fatalf("cannot set: %+v", err)
		}
	}

	it, err := s.Iterator(nil, nil)
	if err != nil {
		t.Fatalf("cannot iterate: %+v", err)
	}
	defer it.Close()
	for i := 0; it.Valid(); i++ {
		if !bytes.Equal(it.Key(), keys[i]) {
			t.Fatalf("key %d: expected %q, got %q", i, keys[i], it.Key())
		}
		if err := it.Next(); err != nil {
			t.Fatalf("cannot advance: %+v", err)
		}
	}

	rit, err := s.ReverseIterator(nil, nil)
	if err != nil {
		t.Fatalf("cannot iterate: %+v", err)
	}
	defer rit.Close()
	if !rit.Valid() || !bytes.Equal(rit.Key(), []byte("c")) {
		t.Fatal("reverse iterator must start at the highest key")
	}
}
