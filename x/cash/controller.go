package cash

import (
	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/coin"
	"github.com/iov-one/artmarket/errors"
)

// Controller is the functionality needed by other extensions to move
// funds between accounts.
type Controller interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. This operation is atomic.
	MoveCoins(db artmarket.KVStore, src, dest artmarket.Address, amount coin.Coin) error

	// IssueCoins increases the number of funds on an account by a given
	// amount.
	IssueCoins(db artmarket.KVStore, dest artmarket.Address, amount coin.Coin) error

	// Balance returns the amount of funds stored on an account. It
	// returns an error if the queried account does not exist.
	Balance(db artmarket.KVStore, addr artmarket.Address) (coin.Coins, error)
}

// BaseController implements Controller interface over a wallet bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored on the given account.
func (c BaseController) Balance(db artmarket.KVStore, src artmarket.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(db, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if wallet == nil {
		return nil, errors.Wrapf(errors.ErrEmpty, "no account %s", src)
	}
	return wallet.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db artmarket.KVStore, src, dest artmarket.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %s", amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "no account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds on %s", src)
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db artmarket.KVStore, dest artmarket.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}
