package market

import (
	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/coin"
	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/x"
	"github.com/iov-one/artmarket/x/cash"
	"github.com/iov-one/artmarket/x/nft"
)

const (
	// pay listing creation cost up-front
	createListingCost int64 = 300
	cancelListingCost int64 = 0
	purchaseCost      int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The ticker names the currency every listing price is
// denominated in.
func RegisterRoutes(r artmarket.Registry, auth x.Authenticator, bank cash.Controller, tokens nft.Controller, ticker string) {
	if !coin.IsCC(ticker) {
		panic("invalid market ticker: " + ticker)
	}
	bucket := NewBucket()

	r.Handle(&CreateListingMsg{}, CreateListingHandler{auth, bucket, tokens})
	r.Handle(&CancelListingMsg{}, CancelListingHandler{auth, bucket, tokens})
	r.Handle(&PurchaseMsg{}, PurchaseHandler{auth, bucket, bank, tokens, ticker})
}

// CreateListingHandler locks an asset into a fresh escrow slot and
// persists the listing record.
type CreateListingHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens nft.Controller
}

var _ artmarket.Handler = CreateListingHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateListingHandler) Check(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &artmarket.CheckResult{GasAllocated: createListingCost}, nil
}

// Deliver moves the asset into escrow and creates the listing if all
// preconditions are met. Either both happen or neither does.
func (h CreateListingHandler) Deliver(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.DeliverResult, error) {
	msg, seller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	blockTime, err := artmarket.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	now := artmarket.AsUnixTime(blockTime)

	listing := &Listing{
		Seller:    seller,
		Asset:     msg.Asset,
		Price:     msg.Price,
		CreatedAt: now,
		ExpiresAt: now.Add(msg.Duration.Duration()),
		Status:    ListingActive,
	}
	id, err := h.bucket.Create(db, listing)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store listing")
	}

	// Deposit the asset to the listing escrow. The token registry
	// rejects this unless the seller is the current owner.
	if err := h.tokens.Move(db, msg.Asset, seller, EscrowAddress(id)); err != nil {
		return nil, errors.Wrapf(ErrAssetTransfer, "cannot escrow asset: %v", err)
	}

	return &artmarket.DeliverResult{Data: id}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateListingHandler) validate(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*CreateListingMsg, artmarket.Address, error) {
	var msg CreateListingMsg
	if err := artmarket.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	// Seller must authorize this (if not set, defaults to MainSigner).
	seller := msg.Seller
	if seller == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		seller = signer.Address()
	} else if !h.auth.HasAddress(ctx, seller) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "seller did not sign")
	}

	return &msg, seller, nil
}

// CancelListingHandler takes an active listing down and returns the
// escrowed asset to the seller.
type CancelListingHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens nft.Controller
}

var _ artmarket.Handler = CancelListingHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CancelListingHandler) Check(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &artmarket.CheckResult{GasAllocated: cancelListingCost}, nil
}

// Deliver releases the asset back to the seller and marks the listing
// cancelled. There is no time window check: the seller can always take
// an active listing down, also long after it expired.
func (h CancelListingHandler) Deliver(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.DeliverResult, error) {
	msg, listing, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.tokens.Move(db, listing.Asset, EscrowAddress(msg.ListingID), listing.Seller); err != nil {
		return nil, errors.Wrapf(ErrAssetTransfer, "cannot release asset: %v", err)
	}

	listing.Status = ListingCancelled
	if err := h.bucket.Save(db, NewListingObj(msg.ListingID, listing)); err != nil {
		return nil, errors.Wrap(err, "cannot update listing")
	}

	return &artmarket.DeliverResult{Data: msg.ListingID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CancelListingHandler) validate(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*CancelListingMsg, *Listing, error) {
	var msg CancelListingMsg
	if err := artmarket.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	listing, err := h.bucket.GetListing(db, msg.ListingID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load listing")
	}
	if listing == nil {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "listing %X", msg.ListingID)
	}
	if listing.Status != ListingActive {
		return nil, nil, errors.Wrapf(ErrListingNotActive, "status %s", listing.Status)
	}

	// Only the seller may cancel.
	if !h.auth.HasAddress(ctx, listing.Seller) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the seller can cancel")
	}

	return &msg, listing, nil
}

// PurchaseHandler executes the atomic swap of payment for asset.
type PurchaseHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   cash.Controller
	tokens nft.Controller
	ticker string
}

var _ artmarket.Handler = PurchaseHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h PurchaseHandler) Check(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &artmarket.CheckResult{GasAllocated: purchaseCost}, nil
}

// Deliver swaps payment for asset. The payment moves from buyer to
// seller, the asset from escrow to buyer, and the listing becomes sold.
// The caller runs this on a cache wrap, so a failure in any step leaves
// no partial effect behind.
func (h PurchaseHandler) Deliver(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.DeliverResult, error) {
	msg, listing, buyer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Payment leg, authorized by the buyer.
	price := coin.NewCoin(int64(listing.Price), 0, h.ticker)
	if err := h.bank.MoveCoins(db, buyer, listing.Seller, price); err != nil {
		return nil, errors.Wrap(err, "payment rejected")
	}

	// Escrow leg, authorized by the listing itself.
	if err := h.tokens.Move(db, listing.Asset, EscrowAddress(msg.ListingID), buyer); err != nil {
		return nil, errors.Wrapf(ErrAssetTransfer, "cannot release asset: %v", err)
	}

	listing.Status = ListingSold
	if err := h.bucket.Save(db, NewListingObj(msg.ListingID, listing)); err != nil {
		return nil, errors.Wrap(err, "cannot update listing")
	}

	return &artmarket.DeliverResult{Data: msg.ListingID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h PurchaseHandler) validate(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*PurchaseMsg, *Listing, artmarket.Address, error) {
	var msg PurchaseMsg
	if err := artmarket.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	listing, err := h.bucket.GetListing(db, msg.ListingID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load listing")
	}
	if listing == nil {
		return nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "listing %X", msg.ListingID)
	}
	if listing.Status != ListingActive {
		return nil, nil, nil, errors.Wrapf(ErrListingNotActive, "status %s", listing.Status)
	}

	// The deadline itself is still valid for purchase. The stored
	// status never flips on expiry, the deadline only blocks purchases
	// coming in strictly after it.
	blockTime, err := artmarket.BlockTime(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if artmarket.AsUnixTime(blockTime) > listing.ExpiresAt {
		return nil, nil, nil, errors.Wrapf(ErrListingExpired, "expired at %s", listing.ExpiresAt)
	}

	// Buyer must authorize this (if not set, defaults to MainSigner).
	buyer := msg.Buyer
	if buyer == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		buyer = signer.Address()
	} else if !h.auth.HasAddress(ctx, buyer) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "buyer did not sign")
	}

	return &msg, listing, buyer, nil
}
