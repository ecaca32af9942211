package market

import (
	"encoding/binary"

	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/coin"
	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/x/nft"
)

const (
	pathCreateListingMsg = "market/create"
	pathCancelListingMsg = "market/cancel"
	pathPurchaseMsg      = "market/purchase"

	// listingIDSize is the size of a sequence generated listing id
	listingIDSize = 8
)

var _ artmarket.Msg = (*CreateListingMsg)(nil)
var _ artmarket.Msg = (*CancelListingMsg)(nil)
var _ artmarket.Msg = (*PurchaseMsg)(nil)

// CreateListingMsg locks an asset into escrow and advertises it for
// sale.
type CreateListingMsg struct {
	// Seller is the account offering the asset. When empty the main
	// transaction signer is used.
	Seller artmarket.Address
	// Asset is the identifier of the token to sell.
	Asset []byte
	// Price is the amount to pay, in whole units of the market
	// currency.
	Price uint64
	// Duration is how long the offer stands, counted from the current
	// block time.
	Duration artmarket.UnixDuration
}

// Path fulfills artmarket.Msg interface to allow routing
func (CreateListingMsg) Path() string {
	return pathCreateListingMsg
}

// Validate makes sure that this is sensible
func (m *CreateListingMsg) Validate() error {
	if m.Seller != nil {
		if err := m.Seller.Validate(); err != nil {
			return errors.Wrap(err, "seller")
		}
	}
	if err := nft.ValidateTokenID(m.Asset); err != nil {
		return errors.Wrap(err, "asset")
	}
	if m.Price == 0 {
		return errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	if m.Price > uint64(coin.MaxInt) {
		return errors.Wrap(errors.ErrAmount, "price out of range")
	}
	if m.Duration <= 0 {
		return errors.Wrap(errors.ErrInput, "duration must be positive")
	}
	return nil
}

// CancelListingMsg takes an active listing down and returns the asset
// to the seller.
type CancelListingMsg struct {
	// ListingID references the listing to cancel.
	ListingID []byte
}

// Path fulfills artmarket.Msg interface to allow routing
func (CancelListingMsg) Path() string {
	return pathCancelListingMsg
}

// Validate makes sure that this is sensible
func (m *CancelListingMsg) Validate() error {
	return validateListingID(m.ListingID)
}

// PurchaseMsg executes the swap: the price moves from buyer to seller
// and the escrowed asset moves to the buyer.
type PurchaseMsg struct {
	// ListingID references the listing to buy from.
	ListingID []byte
	// Buyer is the paying account. When empty the main transaction
	// signer is used.
	Buyer artmarket.Address
}

// Path fulfills artmarket.Msg interface to allow routing
func (PurchaseMsg) Path() string {
	return pathPurchaseMsg
}

// Validate makes sure that this is sensible
func (m *PurchaseMsg) Validate() error {
	if err := validateListingID(m.ListingID); err != nil {
		return err
	}
	if m.Buyer != nil {
		if err := m.Buyer.Validate(); err != nil {
			return errors.Wrap(err, "buyer")
		}
	}
	return nil
}

func validateListingID(id []byte) error {
	if len(id) != listingIDSize {
		return errors.Wrapf(errors.ErrInput, "listing id must be %d bytes", listingIDSize)
	}
	return nil
}

//--------- Wire format --------
//
// Messages use a fixed binary layout. Optional addresses are length
// prefixed with a single byte that is either zero or the address size.

// Marshal encodes the message into its binary layout
func (m *CreateListingMsg) Marshal() ([]byte, error) {
	bz, err := appendAddress(nil, m.Seller)
	if err != nil {
		return nil, errors.Wrap(err, "seller")
	}
	if len(m.Asset) != nft.TokenIDLength {
		return nil, errors.Wrap(errors.ErrInput, "invalid asset length")
	}
	bz = append(bz, m.Asset...)
	bz = appendUint64(bz, m.Price)
	bz = appendUint64(bz, uint64(uint32(m.Duration)))
	return bz, nil
}

// Unmarshal restores the message from its binary layout
func (m *CreateListingMsg) Unmarshal(bz []byte) error {
	seller, bz, err := cutAddress(bz)
	if err != nil {
		return errors.Wrap(err, "seller")
	}
	if len(bz) != nft.TokenIDLength+16 {
		return errors.Wrap(errors.ErrInput, "invalid message length")
	}
	m.Seller = seller
	m.Asset = append([]byte(nil), bz[:nft.TokenIDLength]...)
	bz = bz[nft.TokenIDLength:]
	m.Price = readUint64(bz)
	m.Duration = artmarket.UnixDuration(uint32(readUint64(bz[8:])))
	return nil
}

// Marshal encodes the message into its binary layout
func (m *CancelListingMsg) Marshal() ([]byte, error) {
	if err := validateListingID(m.ListingID); err != nil {
		return nil, err
	}
	return append([]byte(nil), m.ListingID...), nil
}

// Unmarshal restores the message from its binary layout
func (m *CancelListingMsg) Unmarshal(bz []byte) error {
	if err := validateListingID(bz); err != nil {
		return err
	}
	m.ListingID = append([]byte(nil), bz...)
	return nil
}

// Marshal encodes the message into its binary layout
func (m *PurchaseMsg) Marshal() ([]byte, error) {
	if err := validateListingID(m.ListingID); err != nil {
		return nil, err
	}
	bz := append([]byte(nil), m.ListingID...)
	return appendAddress(bz, m.Buyer)
}

// Unmarshal restores the message from its binary layout
func (m *PurchaseMsg) Unmarshal(bz []byte) error {
	if len(bz) < listingIDSize {
		return errors.Wrap(errors.ErrInput, "invalid message length")
	}
	id := append([]byte(nil), bz[:listingIDSize]...)
	buyer, rest, err := cutAddress(bz[listingIDSize:])
	if err != nil {
		return errors.Wrap(err, "buyer")
	}
	if len(rest) != 0 {
		return errors.Wrap(errors.ErrInput, "trailing bytes")
	}
	m.ListingID = id
	m.Buyer = buyer
	return nil
}

func appendAddress(bz []byte, addr artmarket.Address) ([]byte, error) {
	if addr == nil {
		return append(bz, 0), nil
	}
	if len(addr) != artmarket.AddressLength {
		return nil, errors.Wrap(errors.ErrInput, "invalid address length")
	}
	bz = append(bz, byte(len(addr)))
	return append(bz, addr...), nil
}

func cutAddress(bz []byte) (artmarket.Address, []byte, error) {
	if len(bz) < 1 {
		return nil, nil, errors.Wrap(errors.ErrInput, "truncated address")
	}
	l := int(bz[0])
	bz = bz[1:]
	if l == 0 {
		return nil, bz, nil
	}
	if l != artmarket.AddressLength || len(bz) < l {
		return nil, nil, errors.Wrap(errors.ErrInput, "invalid address length")
	}
	addr := append([]byte(nil), bz[:l]...)
	return addr, bz[l:], nil
}

func appendUint64(bz []byte, v uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, v)
	return append(bz, raw...)
}

func readUint64(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}
