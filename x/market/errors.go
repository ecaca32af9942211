package market

import (
	"github.com/iov-one/artmarket/errors"
)

var (
	// ErrListingNotActive is returned when a cancel or purchase refers
	// to a listing that already reached a terminal state.
	ErrListingNotActive = errors.Register(1100, "listing not active")

	// ErrListingExpired is returned when a purchase comes in after the
	// listing time window elapsed.
	ErrListingExpired = errors.Register(1101, "listing expired")

	// ErrAssetTransfer is returned when the escrow leg of an operation
	// is rejected by the token registry.
	ErrAssetTransfer = errors.Register(1102, "asset transfer rejected")
)
