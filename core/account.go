// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package core

import (
	"encoding/json"
	"regexp"

	"github.com/pkg/errors"
)

const (
	MinAccountIDLen = 2
	MaxAccountIDLen = 64
)

// lowercase alphanumeric parts separated by a single '-', '_' or '.'
var accountIDPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// AccountID identifies an account on the host, e.g. "alice.near".
type AccountID string

// ParseAccountID validates s against the host naming rules.
func ParseAccountID(s string) (AccountID, error) {
	if len(s) < MinAccountIDLen || len(s) > MaxAccountIDLen {
		return "", errors.Errorf("invalid account id %q: length must be in [%d, %d]", s, MinAccountIDLen, MaxAccountIDLen)
	}
	if !accountIDPattern.MatchString(s) {
		return "", errors.Errorf("invalid account id %q", s)
	}
	return AccountID(s), nil
}

// MustParseAccountID is like ParseAccountID but panics on error.
func MustParseAccountID(s string) AccountID {
	id, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String implements fmt.Stringer.
func (id AccountID) String() string {
	return string(id)
}

// Bytes returns the raw bytes of the id. It's used as storage key material.
func (id AccountID) Bytes() []byte {
	return []byte(id)
}

// IsZero returns whether the id is empty.
func (id AccountID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON implements json.Unmarshaler and validates the id.
func (id *AccountID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAccountID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
