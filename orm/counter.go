package orm

import (
	"encoding/binary"

	"github.com/iov-one/artmarket/errors"
)

// Counter is a simple persistent value, used mainly to test and
// demonstrate bucket wiring. It encodes as 8 big-endian bytes.
type Counter struct {
	Count int64
}

var _ CloneableData = (*Counter)(nil)

// Marshal encodes the count as 8 big-endian bytes
func (c *Counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

// Unmarshal parses 8 big-endian bytes into the count
func (c *Counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrapf(errors.ErrInput, "invalid counter length: %d", len(bz))
	}
	c.Count = int64(binary.BigEndian.Uint64(bz))
	return nil
}

// Copy produces a new copy to fulfill the CloneableData interface
func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}

// Validate is always successful
func (c *Counter) Validate() error {
	return nil
}

// NewCounterObj wraps a counter value into an object for bucket storage
func NewCounterObj(key []byte, count int64) Object {
	return NewSimpleObj(key, &Counter{Count: count})
}
