package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/artmarket/store"
)

func TestSequenceIncrement(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("listing", "id")

	var prev []byte
	for i := int64(1); i <= 10; i++ {
		val, err := s.NextInt(db)
		if err != nil {
			t.Fatalf("cannot increment: %+v", err)
		}
		if val != i {
			t.Fatalf("expected %d, got %d", i, val)
		}

		bz, err := s.NextVal(db)
		if err != nil {
			t.Fatalf("cannot increment: %+v", err)
		}
		if len(bz) != 8 {
			t.Fatalf("expected 8 byte key, got %d", len(bz))
		}
		// keys must sort in issue order
		if bytes.Compare(prev, bz) >= 0 {
			t.Fatalf("key %x does not sort after %x", bz, prev)
		}
		prev = bz
	}
}

func TestSequenceLatest(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("listing", "id")

	// fresh sequence starts at zero
	val, _, err := s.Latest(db)
	if err != nil {
		t.Fatalf("cannot read: %+v", err)
	}
	if val != 0 {
		t.Fatalf("expected 0, got %d", val)
	}

	if _, err := s.NextVal(db); err != nil {
		t.Fatalf("cannot increment: %+v", err)
	}

	// Latest does not modify the state
	for i := 0; i < 3; i++ {
		val, bz, err := s.Latest(db)
		if err != nil {
			t.Fatalf("cannot read: %+v", err)
		}
		if val != 1 {
			t.Fatalf("expected 1, got %d", val)
		}
		if DecodeSequence(bz) != 1 {
			t.Fatalf("bad encoding: %x", bz)
		}
	}
}

func TestSequenceIsolation(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("listing", "id")
	b := NewSequence("token", "id")

	if _, err := a.NextVal(db); err != nil {
		t.Fatalf("cannot increment: %+v", err)
	}
	val, err := b.NextInt(db)
	if err != nil {
		t.Fatalf("cannot increment: %+v", err)
	}
	if val != 1 {
		t.Fatalf("sequences must not share state, got %d", val)
	}
}
