package market

import (
	"encoding/binary"

	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/orm"
	"github.com/iov-one/artmarket/x/nft"
)

// BucketName is where we store the listings
const BucketName = "listing"

// ListingStatus is the lifecycle state of a listing. Cancelled and Sold
// are terminal.
type ListingStatus byte

const (
	ListingActive    ListingStatus = 0
	ListingCancelled ListingStatus = 1
	ListingSold      ListingStatus = 2
)

func (s ListingStatus) String() string {
	switch s {
	case ListingActive:
		return "active"
	case ListingCancelled:
		return "cancelled"
	case ListingSold:
		return "sold"
	default:
		return "invalid"
	}
}

// listingSize is the exact size of the binary listing encoding
const listingSize = 89

// Listing is an offer to sell one unique asset at a fixed price until a
// deadline. All fields except Status are immutable after creation.
type Listing struct {
	Seller    artmarket.Address
	Asset     []byte
	Price     uint64
	CreatedAt artmarket.UnixTime
	ExpiresAt artmarket.UnixTime
	Status    ListingStatus
}

var _ orm.CloneableData = (*Listing)(nil)

// Marshal encodes the listing into its fixed size binary layout:
// seller (32), asset (32), price (8), created_at (8), expires_at (8)
// and status (1), integers big-endian.
func (l *Listing) Marshal() ([]byte, error) {
	if len(l.Seller) != artmarket.AddressLength {
		return nil, errors.Wrap(errors.ErrInput, "invalid seller length")
	}
	if len(l.Asset) != nft.TokenIDLength {
		return nil, errors.Wrap(errors.ErrInput, "invalid asset length")
	}
	bz := make([]byte, listingSize)
	copy(bz, l.Seller)
	copy(bz[32:], l.Asset)
	binary.BigEndian.PutUint64(bz[64:], l.Price)
	binary.BigEndian.PutUint64(bz[72:], uint64(l.CreatedAt))
	binary.BigEndian.PutUint64(bz[80:], uint64(l.ExpiresAt))
	bz[88] = byte(l.Status)
	return bz, nil
}

// Unmarshal restores the listing from its binary layout.
func (l *Listing) Unmarshal(bz []byte) error {
	if len(bz) != listingSize {
		return errors.Wrapf(errors.ErrInput, "invalid listing length: %d", len(bz))
	}
	l.Seller = append([]byte(nil), bz[:32]...)
	l.Asset = append([]byte(nil), bz[32:64]...)
	l.Price = binary.BigEndian.Uint64(bz[64:])
	l.CreatedAt = artmarket.UnixTime(binary.BigEndian.Uint64(bz[72:]))
	l.ExpiresAt = artmarket.UnixTime(binary.BigEndian.Uint64(bz[80:]))
	l.Status = ListingStatus(bz[88])
	return nil
}

// Validate ensures the listing is well formed
func (l *Listing) Validate() error {
	if err := l.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if err := nft.ValidateTokenID(l.Asset); err != nil {
		return errors.Wrap(err, "asset")
	}
	if l.Price == 0 {
		return errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	if err := l.CreatedAt.Validate(); err != nil {
		return errors.Wrap(err, "created at")
	}
	if err := l.ExpiresAt.Validate(); err != nil {
		return errors.Wrap(err, "expires at")
	}
	if l.ExpiresAt <= l.CreatedAt {
		return errors.Wrap(errors.ErrInput, "expiration must come after creation")
	}
	if l.Status > ListingSold {
		return errors.Wrapf(errors.ErrState, "invalid status: %d", l.Status)
	}
	return nil
}

// Copy makes a deep copy of the listing
func (l *Listing) Copy() orm.CloneableData {
	return &Listing{
		Seller:    append([]byte(nil), l.Seller...),
		Asset:     append([]byte(nil), l.Asset...),
		Price:     l.Price,
		CreatedAt: l.CreatedAt,
		ExpiresAt: l.ExpiresAt,
		Status:    l.Status,
	}
}

// AsListing extracts the listing value from the given object
func AsListing(obj orm.Object) *Listing {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Listing)
}

// NewListingObj wraps a listing into an object for bucket storage
func NewListingObj(id []byte, listing *Listing) orm.Object {
	return orm.NewSimpleObj(id, listing)
}

// Condition is the per listing escrow authority. Only market handlers
// acting on behalf of this specific listing move assets out of the
// derived address.
func Condition(id []byte) artmarket.Condition {
	return artmarket.NewCondition("market", "escrow", id)
}

// EscrowAddress returns the address holding the asset of the given
// listing while it is active.
func EscrowAddress(id []byte) artmarket.Address {
	return Condition(id).Address()
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewBucket initializes a market.Bucket with default name
func NewBucket() Bucket {
	b := orm.NewBucket(BucketName, NewListingObj(nil, &Listing{}))
	return Bucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

// Create assigns the next sequence id to the given listing and stores
// it. The generated id is returned.
func (b Bucket) Create(db artmarket.KVStore, listing *Listing) ([]byte, error) {
	id, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire id")
	}
	if err := b.Save(db, NewListingObj(id, listing)); err != nil {
		return nil, err
	}
	return id, nil
}

// GetListing loads the listing with the given id, nil if none exists
func (b Bucket) GetListing(db artmarket.ReadOnlyKVStore, id []byte) (*Listing, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	return AsListing(obj), nil
}

// ListAll returns all stored listings in creation order together with
// their identifiers.
func (b Bucket) ListAll(db artmarket.ReadOnlyKVStore) (ids [][]byte, listings []*Listing, err error) {
	objs, err := b.GetAll(db)
	if err != nil {
		return nil, nil, err
	}
	for _, obj := range objs {
		ids = append(ids, obj.Key())
		listings = append(listings, AsListing(obj))
	}
	return ids, listings, nil
}
