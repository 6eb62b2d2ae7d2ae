// Package domain holds the value types shared across the DHT: identifiers,
// node references, and stored items.
package domain

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidID is returned when a byte slice cannot be interpreted as an
// identifier of a given Space.
var ErrInvalidID = errors.New("invalid id")

// Space defines the m-bit identifier ring: the set of integers in
// [0, 2^Bits - 1], with identifiers encoded big-endian in ByteLen bytes.
type Space struct {
	Bits    int // ring bit-width m
	ByteLen int // ceil(Bits/8)
}

// NewSpace builds a Space for the given bit-width. b must be > 0 and a
// multiple of 8 in practice (SHA-1 truncation assumes byte alignment).
func NewSpace(b int) (Space, error) {
	if b <= 0 {
		return Space{}, fmt.Errorf("invalid identifier bits: %d (must be > 0)", b)
	}
	if b%8 != 0 {
		return Space{}, fmt.Errorf("invalid identifier bits: %d (must be a multiple of 8)", b)
	}
	if b > 160 {
		return Space{}, fmt.Errorf("invalid identifier bits: %d (must be <= 160, SHA-1 output size)", b)
	}
	return Space{Bits: b, ByteLen: b / 8}, nil
}

// ID is an unsigned integer in a Space, stored big-endian.
type ID []byte

// Zero returns the all-zero identifier for this space.
func (sp Space) Zero() ID {
	return make(ID, sp.ByteLen)
}

// HashString computes the identifier of s: the first 8 bytes of SHA-1(s)
// read as a big-endian unsigned 64-bit integer, reduced mod 2^Bits (i.e.
// the low sp.ByteLen bytes of that integer, zero-padded when Bits > 64).
//
// Used both for node identifiers (s = "host:port") and key identifiers
// (s = the key string) — see spec 4.1.
func (sp Space) HashString(s string) ID {
	h := sha1.Sum([]byte(s))
	buf := make([]byte, sp.ByteLen)
	if sp.ByteLen <= 8 {
		copy(buf, h[8-sp.ByteLen:8])
	} else {
		copy(buf[sp.ByteLen-8:], h[:8])
	}
	return buf
}

// IsValidID reports whether id has the byte length of this space.
func (sp Space) IsValidID(id []byte) error {
	if len(id) != sp.ByteLen {
		return ErrInvalidID
	}
	return nil
}

// ToHexString renders the identifier as lowercase hex, "<nil>" if nil.
func (x ID) ToHexString() string {
	if x == nil {
		return "<nil>"
	}
	return hex.EncodeToString(x)
}

// String implements fmt.Stringer so IDs print sensibly in logs.
func (x ID) String() string {
	return x.ToHexString()
}

// ToBigInt interprets the identifier as a big-endian unsigned integer.
func (x ID) ToBigInt() *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).SetBytes(x)
}

// FromHexString parses a hex string (optionally "0x"-prefixed) into an ID of
// this space, left-padding short values and rejecting values wider than
// sp.ByteLen bytes.
func (sp Space) FromHexString(s string) (ID, error) {
	str := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if str == "" {
		return nil, fmt.Errorf("invalid hex string: empty input")
	}
	bt, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string %q: %w", s, err)
	}
	if len(bt) > sp.ByteLen {
		return nil, fmt.Errorf("value exceeds %d-bit space", sp.Bits)
	}
	id := make(ID, sp.ByteLen)
	copy(id[sp.ByteLen-len(bt):], bt)
	return id, nil
}

// FromUint64 truncates x into an identifier of this space (big-endian,
// least-significant sp.Bits bits kept).
func (sp Space) FromUint64(x uint64) ID {
	id := make(ID, sp.ByteLen)
	for i := sp.ByteLen - 1; i >= 0 && x > 0; i-- {
		id[i] = byte(x & 0xFF)
		x >>= 8
	}
	return id
}

// Cmp compares two identifiers as unsigned big-endian integers.
func (x ID) Cmp(b ID) int {
	return bytes.Compare(x, b)
}

// Equal reports whether x and b are the same identifier.
func (x ID) Equal(b ID) bool {
	return bytes.Equal(x, b)
}

// AddMod returns (a + b) mod 2^Bits.
func (sp Space) AddMod(a, b ID) ID {
	res := make(ID, sp.ByteLen)
	carry := 0
	for i := sp.ByteLen - 1; i >= 0; i-- {
		sum := int(a[i]) + int(b[i]) + carry
		res[i] = byte(sum & 0xFF)
		carry = sum >> 8
	}
	return res
}

// PowerOfTwoMod returns 2^i mod 2^Bits as an identifier, i in [0, Bits).
// Used to compute finger-table start points: (self.id + 2^i) mod N.
func (sp Space) PowerOfTwoMod(i int) ID {
	id := make(ID, sp.ByteLen)
	if i >= sp.Bits {
		return id
	}
	byteIdx := sp.ByteLen - 1 - i/8
	id[byteIdx] = 1 << uint(i%8)
	return id
}

// FingerStart returns (self + 2^i) mod N, the identifier owned by finger i.
func (sp Space) FingerStart(self ID, i int) ID {
	return sp.AddMod(self, sp.PowerOfTwoMod(i))
}

// InRange reports whether x lies on the clockwise arc from a to b.
//
//   - a == b: the arc is the whole ring, so the result is `inclusive`.
//   - a < b:  a < x < b, or a < x <= b when inclusive.
//   - a > b:  the arc wraps through zero: x > a || x < b, or x > a || x <= b
//     when inclusive.
//
// This is the sole interval primitive (spec 4.1): every ownership,
// routing and successor decision reduces to it.
func (sp Space) InRange(x, a, b ID, inclusive bool) bool {
	acmp := a.Cmp(b)
	if acmp == 0 {
		return inclusive
	}
	if acmp < 0 {
		if inclusive {
			return a.Cmp(x) < 0 && x.Cmp(b) <= 0
		}
		return a.Cmp(x) < 0 && x.Cmp(b) < 0
	}
	// wrap
	if inclusive {
		return x.Cmp(a) > 0 || x.Cmp(b) <= 0
	}
	return x.Cmp(a) > 0 || x.Cmp(b) < 0
}
