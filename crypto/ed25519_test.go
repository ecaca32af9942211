package crypto

import (
	"bytes"
	"testing"

	"github.com/iov-one/artmarket"
)

func TestSignAndVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	msg := []byte("sold to the highest bidder")
	sig, err := priv.Sign(msg)
	if err != nil {
		t.Fatalf("cannot sign: %+v", err)
	}

	if !pub.Verify(msg, sig) {
		t.Fatal("signature must verify")
	}
	if pub.Verify([]byte("different message"), sig) {
		t.Fatal("signature must not verify a different message")
	}

	other := GenPrivKeyEd25519().PublicKey()
	if other.Verify(msg, sig) {
		t.Fatal("signature must not verify with a different key")
	}
}

func TestDeterministicFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{42}, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)

	if !bytes.Equal(a.PublicKey().Ed25519, b.PublicKey().Ed25519) {
		t.Fatal("same seed must produce the same key")
	}
}

func TestCondition(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	cond := pub.Condition()
	if err := cond.Validate(); err != nil {
		t.Fatalf("invalid condition: %+v", err)
	}

	addr := pub.Address()
	if err := addr.Validate(); err != nil {
		t.Fatalf("invalid address: %+v", err)
	}
	if len(addr) != artmarket.AddressLength {
		t.Fatalf("unexpected address size: %d", len(addr))
	}
	if !addr.Equals(cond.Address()) {
		t.Fatal("address must be derived from the condition")
	}
}
