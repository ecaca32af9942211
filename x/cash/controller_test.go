package cash

import (
	"testing"

	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/coin"
	"github.com/iov-one/artmarket/errors"
	"github.com/iov-one/artmarket/markettest"
	"github.com/iov-one/artmarket/store"
)

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())

	addr := markettest.NewCondition().Address()

	plus := coin.NewCoin(500, 1000, "ART")
	if err := ctrl.IssueCoins(db, addr, plus); err != nil {
		t.Fatalf("cannot issue: %+v", err)
	}

	balance, err := ctrl.Balance(db, addr)
	if err != nil {
		t.Fatalf("cannot get balance: %+v", err)
	}
	if !balance.Contains(plus) {
		t.Fatalf("unexpected balance: %v", balance)
	}

	// issuing a negative amount burns funds
	minus := coin.NewCoin(-100, 0, "ART")
	if err := ctrl.IssueCoins(db, addr, minus); err != nil {
		t.Fatalf("cannot burn: %+v", err)
	}
	balance, err = ctrl.Balance(db, addr)
	if err != nil {
		t.Fatalf("cannot get balance: %+v", err)
	}
	if !balance.Contains(coin.NewCoin(400, 1000, "ART")) {
		t.Fatalf("unexpected balance: %v", balance)
	}
}

func TestMoveCoins(t *testing.T) {
	funded := markettest.NewCondition().Address()
	broke := markettest.NewCondition().Address()
	rcpt := markettest.NewCondition().Address()

	cases := map[string]struct {
		src     artmarket.Address
		dest    artmarket.Address
		amount  coin.Coin
		wantErr *errors.Error
	}{
		"happy path": {
			src:    funded,
			dest:   rcpt,
			amount: coin.NewCoin(20, 0, "ART"),
		},
		"exact balance can be moved": {
			src:    funded,
			dest:   rcpt,
			amount: coin.NewCoin(100, 0, "ART"),
		},
		"insufficient funds": {
			src:     funded,
			dest:    rcpt,
			amount:  coin.NewCoin(101, 0, "ART"),
			wantErr: errors.ErrAmount,
		},
		"missing source account": {
			src:     broke,
			dest:    rcpt,
			amount:  coin.NewCoin(1, 0, "ART"),
			wantErr: errors.ErrEmpty,
		},
		"zero transfer is forbidden": {
			src:     funded,
			dest:    rcpt,
			amount:  coin.NewCoin(0, 0, "ART"),
			wantErr: errors.ErrAmount,
		},
		"negative transfer is forbidden": {
			src:     funded,
			dest:    rcpt,
			amount:  coin.NewCoin(-5, 0, "ART"),
			wantErr: errors.ErrAmount,
		},
		"wrong currency": {
			src:     funded,
			dest:    rcpt,
			amount:  coin.NewCoin(10, 0, "IOV"),
			wantErr: errors.ErrAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			if err := ctrl.IssueCoins(db, funded, coin.NewCoin(100, 0, "ART")); err != nil {
				t.Fatalf("cannot fund account: %+v", err)
			}

			err := ctrl.MoveCoins(db, tc.src, tc.dest, tc.amount)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot move: %+v", err)
			}

			got, err := ctrl.Balance(db, tc.dest)
			if err != nil {
				t.Fatalf("cannot get balance: %+v", err)
			}
			if !got.Contains(tc.amount) {
				t.Fatalf("recipient balance: %v", got)
			}

			src, err := ctrl.Balance(db, tc.src)
			if err != nil {
				t.Fatalf("cannot get balance: %+v", err)
			}
			want := coin.NewCoin(100, 0, "ART")
			left, err := want.Subtract(tc.amount)
			if err != nil {
				t.Fatalf("cannot compute: %+v", err)
			}
			if !left.IsZero() && !src.Contains(left) {
				t.Fatalf("sender balance: %v", src)
			}
		})
	}
}

func TestWalletSerialization(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	addr := markettest.NewCondition().Address()
	wallet := NewWallet(addr, coin.NewCoinp(1, 2, "ART"), coin.NewCoinp(3, 4, "IOV"))
	if err := bucket.Save(db, wallet); err != nil {
		t.Fatalf("cannot save: %+v", err)
	}

	loaded, err := bucket.Get(db, addr)
	if err != nil {
		t.Fatalf("cannot load: %+v", err)
	}
	if loaded == nil {
		t.Fatal("wallet not found")
	}
	if !loaded.Coins().Equals(wallet.Coins()) {
		t.Fatalf("unexpected coins: %v", loaded.Coins())
	}
}
