// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package core

import (
	"bytes"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// MaxAmount is the largest representable amount, 2^128-1.
var MaxAmount = Amount{v: *new(uint256.Int).SubUint64(new(uint256.Int).Lsh(uint256.NewInt(1), 128), 1)}

// Amount is an unsigned 128-bit quantity of native currency.
// The zero value is 0 and Amount is safe to copy.
type Amount struct {
	v uint256.Int
}

// NewAmount creates an amount from an uint64.
func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// ParseAmount parses a base 10 string.
func ParseAmount(s string) (Amount, error) {
	var a Amount
	if err := a.v.SetFromDecimal(s); err != nil {
		return Amount{}, errors.Wrapf(err, "invalid amount %q", s)
	}
	if a.v.Gt(&MaxAmount.v) {
		return Amount{}, errors.Errorf("invalid amount %q: exceeds 128 bits", s)
	}
	return a, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// SaturatingAdd returns a+b, clamped to MaxAmount.
func (a Amount) SaturatingAdd(b Amount) Amount {
	var r Amount
	r.v.Add(&a.v, &b.v) // both operands fit in 128 bits, no 256 bits overflow
	if r.v.Gt(&MaxAmount.v) {
		return MaxAmount
	}
	return r
}

// SaturatingSub returns a-b, clamped to zero.
func (a Amount) SaturatingSub(b Amount) Amount {
	if a.v.Lt(&b.v) {
		return Amount{}
	}
	var r Amount
	r.v.Sub(&a.v, &b.v)
	return r
}

// CheckedSub returns a-b. ok is false if b is greater than a.
func (a Amount) CheckedSub(b Amount) (r Amount, ok bool) {
	if a.v.Lt(&b.v) {
		return Amount{}, false
	}
	r.v.Sub(&a.v, &b.v)
	return r, true
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// IsZero returns whether a is 0.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Uint64 returns the lower 64 bits of a.
func (a Amount) Uint64() uint64 {
	return a.v.Uint64()
}

// String returns a in base 10.
func (a Amount) String() string {
	return a.v.Dec()
}

// MarshalJSON encodes a as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.v.Dec()), nil
}

// UnmarshalJSON accepts both a JSON number and a decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return errors.Wrap(err, "invalid amount")
		}
		data = []byte(s)
	}
	parsed, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, used by yaml encoders.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.v.Dec()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// EncodeRLP implements rlp.Encoder.
func (a Amount) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &a.v)
}

// DecodeRLP implements rlp.Decoder.
func (a *Amount) DecodeRLP(s *rlp.Stream) error {
	var v uint256.Int
	if err := s.ReadUint256(&v); err != nil {
		return err
	}
	if v.Gt(&MaxAmount.v) {
		return errors.New("rlp: amount exceeds 128 bits")
	}
	a.v = v
	return nil
}
