package crypto

import (
	"github.com/iov-one/artmarket"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we derive from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig []byte) bool
	Condition() artmarket.Condition
}

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() PublicKey
}

// PublicKey holds a raw ed25519 public key
type PublicKey struct {
	Ed25519 []byte
}

var _ PubKey = PublicKey{}

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message []byte, sig []byte) bool {
	publicKey := ed25519.PublicKey(p.Ed25519)
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(publicKey, message, sig)
}

// Condition encodes the public key into a principal condition.
//    p.Condition().Address()
// returns the account address controlled by this key.
func (p PublicKey) Condition() artmarket.Condition {
	return artmarket.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is a shortcut for Condition().Address()
func (p PublicKey) Address() artmarket.Address {
	return p.Condition().Address()
}

// PrivateKey holds a raw ed25519 private key
type PrivateKey struct {
	Ed25519 []byte
}

var _ Signer = PrivateKey{}

// Sign returns a matching signature for this private key
func (p PrivateKey) Sign(message []byte) ([]byte, error) {
	privateKey := ed25519.PrivateKey(p.Ed25519)
	return ed25519.Sign(privateKey, message), nil
}

// PublicKey returns the corresponding PublicKey
func (p PrivateKey) PublicKey() PublicKey {
	privateKey := ed25519.PrivateKey(p.Ed25519)
	pub := privateKey.Public().(ed25519.PublicKey)
	return PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) PrivateKey {
	priv := ed25519.NewKeyFromSeed(seed)
	return PrivateKey{Ed25519: priv}
}
