package artmarket_test

import (
	"testing"

	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/markettest"
)

type demoMsg struct {
	Payload []byte
	err     error
}

var _ artmarket.Msg = (*demoMsg)(nil)

func (m *demoMsg) Path() string             { return "demo/msg" }
func (m *demoMsg) Validate() error          { return m.err }
func (m *demoMsg) Marshal() ([]byte, error) { return m.Payload, nil }
func (m *demoMsg) Unmarshal(b []byte) error { m.Payload = b; return nil }

func TestLoadMsg(t *testing.T) {
	msg := &demoMsg{Payload: []byte("1337")}
	tx := &markettest.Tx{Msg: msg}

	var dst demoMsg
	if err := artmarket.LoadMsg(tx, &dst); err != nil {
		t.Fatalf("cannot load message: %+v", err)
	}
	if string(dst.Payload) != "1337" {
		t.Fatalf("unexpected payload: %q", dst.Payload)
	}
}

func TestLoadMsgWrongDestination(t *testing.T) {
	tx := &markettest.Tx{Msg: &demoMsg{}}

	var dst markettest.Msg
	if err := artmarket.LoadMsg(tx, &dst); !errors.ErrType.Is(err) {
		t.Fatalf("expected type error, got %+v", err)
	}
}

func TestLoadMsgInvalid(t *testing.T) {
	tx := &markettest.Tx{Msg: &demoMsg{err: errors.ErrInput}}

	var dst demoMsg
	if err := artmarket.LoadMsg(tx, &dst); !errors.ErrInput.Is(err) {
		t.Fatalf("expected validation error, got %+v", err)
	}
}

func TestGetPath(t *testing.T) {
	if got := artmarket.GetPath(&markettest.Tx{Msg: &demoMsg{}}); got != "demo/msg" {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := artmarket.GetPath(&markettest.Tx{Err: errors.ErrNotFound}); got != "(missing)" {
		t.Fatalf("unexpected path: %q", got)
	}
}
