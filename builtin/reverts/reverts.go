// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"github.com/pkg/errors"
)

// ErrRequire is a failed precondition of a contract call.
// The whole call is reverted when it's returned.
type ErrRequire struct {
	message string
}

func NewRequireError(message string) *ErrRequire {
	return &ErrRequire{
		message: message,
	}
}

func (e *ErrRequire) Error() string {
	return e.message
}

// IsRequire reports whether err, or an error it wraps, is an ErrRequire.
func IsRequire(err error) bool {
	var target *ErrRequire
	return errors.As(err, &target)
}
