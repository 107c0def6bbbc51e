// Package counter implements the 32 bit big-endian counter tail of a
// GCM counter block J = nonce || ctr32.
package counter

import (
	"errors"

	"github.com/GMUCERG/AESGCM/src/consts"
)

// Counter is the 4 byte big-endian counter value appended to a nonce
// to form a GCM counter block.
type Counter struct {
	Bytes [consts.COUNTER_SIZE]byte
}

// NewCounter builds a Counter from its big-endian byte representation.
func NewCounter(src []byte) (*Counter, error) {
	if len(src) != consts.COUNTER_SIZE {
		return &Counter{}, errors.New("counter: invalid src size")
	}

	counter := new(Counter)
	copy(counter.Bytes[:], src)

	return counter, nil
}

// Increment adds 1 to the counter, wrapping on overflow of the low
// 32 bits as GCM requires; the nonce prefix this counter is appended
// to is never touched.
func (c *Counter) Increment() {
	for i := consts.COUNTER_SIZE - 1; i >= 0; i-- {
		c.Bytes[i]++
		if c.Bytes[i] != 0 {
			break
		}
	}
}
