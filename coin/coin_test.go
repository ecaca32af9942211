package coin

import (
	"testing"

	"github.com/iov-one/artmarket/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinArithmetic(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		want    Coin
		wantErr *errors.Error
	}{
		"simple add": {
			a:    NewCoin(1, 0, "ART"),
			b:    NewCoin(2, 500, "ART"),
			want: NewCoin(3, 500, "ART"),
		},
		"fraction carries over": {
			a:    NewCoin(1, FracUnit-1, "ART"),
			b:    NewCoin(0, 2, "ART"),
			want: NewCoin(2, 1, "ART"),
		},
		"zero coin without ticker is neutral": {
			a:    NewCoin(0, 0, ""),
			b:    NewCoin(7, 0, "IOV"),
			want: NewCoin(7, 0, "IOV"),
		},
		"currency mismatch": {
			a:       NewCoin(1, 0, "ART"),
			b:       NewCoin(1, 0, "IOV"),
			wantErr: errors.ErrCurrency,
		},
		"overflow": {
			a:       NewCoin(MaxInt, 0, "ART"),
			b:       NewCoin(1, 0, "ART"),
			wantErr: errors.ErrOverflow,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equals(got), "got %s", got)
		})
	}
}

func TestCoinSubtractNegative(t *testing.T) {
	small := NewCoin(1, 0, "ART")
	big := NewCoin(2, 0, "ART")

	got, err := small.Subtract(big)
	require.NoError(t, err)
	assert.False(t, got.IsNonNegative())
	assert.True(t, NewCoin(-1, 0, "ART").Equals(got))

	// a value subtracted from itself leaves zero
	got, err = small.Subtract(small)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCoinCompare(t *testing.T) {
	assert.Equal(t, 1, NewCoin(2, 0, "ART").Compare(NewCoin(1, 900, "ART")))
	assert.Equal(t, -1, NewCoin(1, 5, "ART").Compare(NewCoin(1, 6, "ART")))
	assert.Equal(t, 0, NewCoin(1, 5, "ART").Compare(NewCoin(1, 5, "ART")))
	assert.True(t, NewCoin(1, 5, "ART").IsGTE(NewCoin(1, 5, "ART")))
	assert.False(t, NewCoin(1, 5, "ART").IsGTE(NewCoin(1, 6, "ART")))
	assert.False(t, NewCoin(1, 5, "ART").IsGTE(NewCoin(1, 5, "IOV")))
}

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid":           {coin: NewCoin(42, 0, "ART")},
		"valid negative":  {coin: NewCoin(-42, -1, "ART")},
		"bad ticker":      {coin: NewCoin(1, 0, "art"), wantErr: errors.ErrCurrency},
		"no ticker":       {coin: NewCoin(1, 0, ""), wantErr: errors.ErrCurrency},
		"whole too big":   {coin: NewCoin(MaxInt+1, 0, "ART"), wantErr: errors.ErrOverflow},
		"frac too big":    {coin: NewCoin(1, FracUnit, "ART"), wantErr: errors.ErrOverflow},
		"mismatched sign": {coin: NewCoin(1, -1, "ART"), wantErr: errors.ErrState},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestCoinSerialization(t *testing.T) {
	coins := []Coin{
		NewCoin(12345, 678, "ART"),
		NewCoin(-3, -5, "IOV"),
		NewCoin(0, 0, ""),
	}
	for _, c := range coins {
		bz, err := c.Marshal()
		require.NoError(t, err)
		var got Coin
		require.NoError(t, got.Unmarshal(bz))
		assert.True(t, c.Equals(got))
	}

	var c Coin
	assert.Error(t, c.Unmarshal([]byte("too short")))
}

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(1, 0, "IOV"),
		NewCoin(2, 0, "ART"),
		NewCoin(3, 0, "IOV"),
	)
	require.NoError(t, err)
	require.Equal(t, 2, cs.Count())
	// sorted by ticker, duplicates merged
	assert.True(t, cs[0].Equals(NewCoin(2, 0, "ART")))
	assert.True(t, cs[1].Equals(NewCoin(4, 0, "IOV")))
}

func TestCoinsContains(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, 0, "ART"))
	require.NoError(t, err)

	assert.True(t, cs.Contains(NewCoin(5, 0, "ART")))
	assert.True(t, cs.Contains(NewCoin(4, FracUnit-1, "ART")))
	assert.False(t, cs.Contains(NewCoin(5, 1, "ART")))
	assert.False(t, cs.Contains(NewCoin(1, 0, "IOV")))
}

func TestCoinsAddRemove(t *testing.T) {
	var cs Coins
	cs, err := cs.Add(NewCoin(3, 0, "ART"))
	require.NoError(t, err)
	assert.True(t, cs.IsPositive())

	// subtracting everything empties the set
	cs, err = cs.Subtract(NewCoin(3, 0, "ART"))
	require.NoError(t, err)
	assert.True(t, cs.IsEmpty())
	require.NoError(t, cs.Validate())
}
