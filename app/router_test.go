package app

import (
	"context"
	"testing"

	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/markettest"
	"github.com/iov-one/artmarket/store"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	h := &markettest.Handler{}
	r.Handle(&markettest.Msg{RoutePath: "test/good"}, h)

	ctx := context.Background()
	db := store.MemStore()

	tx := &markettest.Tx{Msg: &markettest.Msg{RoutePath: "test/good"}}
	if _, err := r.Check(ctx, db, tx); err != nil {
		t.Fatalf("unexpected check error: %+v", err)
	}
	if _, err := r.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("unexpected deliver error: %+v", err)
	}
	if got := h.CallCount(); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}

	missing := &markettest.Tx{Msg: &markettest.Msg{RoutePath: "test/missing"}}
	if _, err := r.Check(ctx, db, missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found, got %+v", err)
	}
	if _, err := r.Deliver(ctx, db, missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found, got %+v", err)
	}
	if got := h.CallCount(); got != 2 {
		t.Fatalf("expected no extra calls, got %d", got)
	}
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	h := &markettest.Handler{}

	// invalid paths are rejected
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic expected")
			}
		}()
		r.Handle(&markettest.Msg{RoutePath: "no-separator"}, h)
	}()

	// double registration is forbidden
	r.Handle(&markettest.Msg{RoutePath: "test/good"}, h)
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	r.Handle(&markettest.Msg{RoutePath: "test/good"}, h)
}
