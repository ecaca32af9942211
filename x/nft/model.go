package nft

import (
	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/orm"
)

// BucketName is where we store the tokens
const BucketName = "token"

// TokenIDLength is the exact size of a valid token identifier.
const TokenIDLength = 32

// Token keeps the current owner of a unique asset. The asset identifier
// is the bucket key, so the value holds only the owner address.
type Token struct {
	Owner artmarket.Address
}

var _ orm.CloneableData = (*Token)(nil)

// Marshal encodes the token as the raw owner address bytes
func (t *Token) Marshal() ([]byte, error) {
	return append([]byte(nil), t.Owner...), nil
}

// Unmarshal restores the token from raw bytes
func (t *Token) Unmarshal(bz []byte) error {
	if len(bz) != artmarket.AddressLength {
		return errors.Wrapf(errors.ErrInput, "invalid token length: %d", len(bz))
	}
	t.Owner = append([]byte(nil), bz...)
	return nil
}

// Validate ensures the owner address is set
func (t *Token) Validate() error {
	return t.Owner.Validate()
}

// Copy makes a new token with the same owner
func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Owner: append([]byte(nil), t.Owner...),
	}
}

// AsToken extracts the token value from the given object
func AsToken(obj orm.Object) *Token {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Token)
}

// NewToken creates a token object for the given asset and owner
func NewToken(id []byte, owner artmarket.Address) orm.Object {
	return orm.NewSimpleObj(id, &Token{Owner: owner})
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a nft.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewToken(nil, nil)),
	}
}

// ValidateTokenID returns an error if the given bytes are not a valid
// asset identifier.
func ValidateTokenID(id []byte) error {
	if len(id) != TokenIDLength {
		return errors.Wrapf(errors.ErrInput, "token id must be %d bytes", TokenIDLength)
	}
	return nil
}
