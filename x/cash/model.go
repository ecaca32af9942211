package cash

import (
	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/coin"
	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Set keeps the full coin balance of a single account. It encodes as a
// count byte followed by length prefixed coin encodings.
type Set struct {
	Coins []*coin.Coin
}

var _ artmarket.Persistent = (*Set)(nil)

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return coin.Coins(s.Coins).Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() *Set {
	return &Set{
		Coins: coin.Coins(s.Coins).Clone(),
	}
}

// Marshal encodes the whole coin set
func (s *Set) Marshal() ([]byte, error) {
	if len(s.Coins) > 255 {
		return nil, errors.Wrap(errors.ErrInput, "too many coins")
	}
	bz := []byte{byte(len(s.Coins))}
	for _, c := range s.Coins {
		raw, err := c.Marshal()
		if err != nil {
			return nil, err
		}
		bz = append(bz, byte(len(raw)))
		bz = append(bz, raw...)
	}
	return bz, nil
}

// Unmarshal restores the coin set from its binary format
func (s *Set) Unmarshal(bz []byte) error {
	if len(bz) < 1 {
		return errors.Wrap(errors.ErrInput, "empty coin set encoding")
	}
	count := int(bz[0])
	bz = bz[1:]
	coins := make([]*coin.Coin, 0, count)
	for i := 0; i < count; i++ {
		if len(bz) < 1 {
			return errors.Wrap(errors.ErrInput, "truncated coin set")
		}
		l := int(bz[0])
		bz = bz[1:]
		if len(bz) < l {
			return errors.Wrap(errors.ErrInput, "truncated coin set")
		}
		var c coin.Coin
		if err := c.Unmarshal(bz[:l]); err != nil {
			return err
		}
		coins = append(coins, &c)
		bz = bz[l:]
	}
	if len(bz) != 0 {
		return errors.Wrap(errors.ErrInput, "trailing coin set bytes")
	}
	s.Coins = coins
	return nil
}

//--- Wallet (Set object, wallet + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains a set of coins, as well as the
// address. It is connected to the Bucket to easily manipulate
// state.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key artmarket.Address, coins ...*coin.Coin) *Wallet {
	res := &Wallet{key, new(Set)}
	if coins != nil {
		err := res.Concat(coins)
		if err != nil {
			panic(err)
		}
	}
	return res
}

// Value gets the value stored in the object
func (w Wallet) Value() artmarket.Persistent {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if len(w.key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	return w.value.Validate()
}

// SetKey may be used to update a simple obj key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy(),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() coin.Coins {
	return coin.Coins(w.value.Coins)
}

// Add modifies the wallet to add Coin c
func (w *Wallet) Add(c coin.Coin) error {
	cs, err := w.Coins().Add(c)
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.Add(c.Negative())
}

// Concat combines the coins to make sure they are sorted
// and rounded off, with no duplicates or 0 values.
func (w *Wallet) Concat(coins coin.Coins) error {
	joint, err := w.Coins().Combine(coins)
	if err != nil {
		return err
	}
	w.value.Coins = joint
	return nil
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

func (b Bucket) Get(db artmarket.ReadOnlyKVStore, key artmarket.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*Wallet), nil
}

func (b Bucket) Save(db artmarket.KVStore, value *Wallet) error {
	return b.Bucket.Save(db, value)
}

func (b Bucket) GetOrCreate(db artmarket.KVStore, key artmarket.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key)
	}
	return wallet, nil
}
