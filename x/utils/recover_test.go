package utils

import (
	"context"
	"testing"

	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/store"
)

type panicHandler struct{}

var _ artmarket.Handler = panicHandler{}

func (panicHandler) Check(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.DeliverResult, error) {
	panic("deliver panic")
}

func TestRecovery(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	r := NewRecovery()

	_, err := r.Check(ctx, db, nil, panicHandler{})
	if !errors.ErrPanic.Is(err) {
		t.Fatalf("expected a panic error, got %+v", err)
	}

	_, err = r.Deliver(ctx, db, nil, panicHandler{})
	if !errors.ErrPanic.Is(err) {
		t.Fatalf("expected a panic error, got %+v", err)
	}
}
