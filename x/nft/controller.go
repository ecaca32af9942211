package nft

import (
	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/errors"
)

// Controller is the functionality needed by other extensions to manage
// unique asset ownership.
type Controller interface {
	// Issue registers a new asset with the given initial owner. It fails
	// if an asset with that identifier already exists.
	Issue(db artmarket.KVStore, id []byte, owner artmarket.Address) error

	// Owner returns the current owner of an asset. It returns an error
	// if the asset does not exist.
	Owner(db artmarket.KVStore, id []byte) (artmarket.Address, error)

	// Move transfers an asset from the src owner to dest. It fails if
	// the asset does not exist or src is not the current owner.
	Move(db artmarket.KVStore, id []byte, src, dest artmarket.Address) error
}

// BaseController implements Controller interface over a token bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Issue registers a new asset with the given initial owner.
func (c BaseController) Issue(db artmarket.KVStore, id []byte, owner artmarket.Address) error {
	if err := ValidateTokenID(id); err != nil {
		return err
	}
	obj, err := c.bucket.Get(db, id)
	if err != nil {
		return err
	}
	if obj != nil {
		return errors.Wrapf(errors.ErrDuplicate, "token %X", id)
	}
	return c.bucket.Save(db, NewToken(id, owner))
}

// Owner returns the current owner of an asset.
func (c BaseController) Owner(db artmarket.KVStore, id []byte) (artmarket.Address, error) {
	obj, err := c.bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "token %X", id)
	}
	return AsToken(obj).Owner, nil
}

// Move transfers an asset between owners. The src address must match
// the current owner, so an asset can never be taken from an account
// that holds it.
func (c BaseController) Move(db artmarket.KVStore, id []byte, src, dest artmarket.Address) error {
	obj, err := c.bucket.Get(db, id)
	if err != nil {
		return err
	}
	if obj == nil {
		return errors.Wrapf(errors.ErrNotFound, "token %X", id)
	}
	token := AsToken(obj)
	if !token.Owner.Equals(src) {
		return errors.Wrapf(errors.ErrUnauthorized, "token owned by %s", token.Owner)
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "invalid destination")
	}
	token.Owner = dest
	return c.bucket.Save(db, obj)
}
