package artmarket_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionPrinting(t *testing.T) {
	cond := artmarket.NewCondition("market", "escrow", []byte("ABCD123456LHB"))
	assert.NotEqual(t, fmt.Sprintf("%X", cond), cond.String())
	assert.Equal(t, "market/escrow/414243443132333435364C4842", cond.String())
}

func TestConditionParse(t *testing.T) {
	cond := artmarket.NewCondition("market", "escrow", []byte{0, 0, 0, 0, 0, 0, 0, 1})
	require.NoError(t, cond.Validate())

	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "market", ext)
	assert.Equal(t, "escrow", typ)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, data)

	_, _, _, err = artmarket.Condition("garbage").Parse()
	assert.True(t, errors.ErrInput.Is(err))
}

func TestConditionAddress(t *testing.T) {
	cond := artmarket.NewCondition("market", "escrow", []byte("some-id"))
	addr := cond.Address()
	require.NoError(t, addr.Validate())
	assert.Equal(t, artmarket.AddressLength, len(addr))
	// address derivation is stable
	assert.True(t, addr.Equals(cond.Address()))
	// different conditions give different addresses
	other := artmarket.NewCondition("market", "escrow", []byte("other-id"))
	assert.False(t, addr.Equals(other.Address()))
}

func TestAddressUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr artmarket.Address
	}{
		"default decoding": {
			json:     `"636f6e646974696f6e64617461636f6e646974696f6e64617461636f6e64313233"`,
			wantAddr: artmarket.Address("conditiondataconditiondatacond123"),
		},
		"hex decoding": {
			json:     `"hex:636f6e646974696f6e64617461636f6e646974696f6e64617461636f6e64313233"`,
			wantAddr: artmarket.Address("conditiondataconditiondatacond123"),
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: artmarket.NewCondition("foo", "bar", []byte("conditiondata")).Address(),
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"wrong address length": {
			json:    `"6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a artmarket.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(a, tc.wantAddr) {
				t.Fatalf("got address: %q", a)
			}
		})
	}
}

func TestConditionUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json          string
		wantErr       *errors.Error
		wantCondition artmarket.Condition
	}{
		"default decoding": {
			json:          `"foo/bar/636f6e646974696f6e64617461"`,
			wantCondition: artmarket.NewCondition("foo", "bar", []byte("conditiondata")),
		},
		"invalid condition format": {
			json:    `"foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"zero condition": {
			json:          `""`,
			wantCondition: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got artmarket.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !got.Equals(tc.wantCondition) {
				t.Fatalf("expected %q but got condition: %q", tc.wantCondition, got)
			}
		})
	}
}

func TestConditionMarshalJSON(t *testing.T) {
	cases := map[string]struct {
		source   artmarket.Condition
		wantJson string
	}{
		"cond encoding": {
			source:   artmarket.NewCondition("foo", "bar", []byte("conditiondata")),
			wantJson: `"foo/bar/636F6E646974696F6E64617461"`,
		},
		"nil encoding": {
			source:   nil,
			wantJson: `""`,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := json.Marshal(tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.wantJson, string(got))
		})
	}
}
