// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// Backend is the raw key/value storage of the executing contract, as exposed by the host.
// A nil value returned by StorageRead means the key is absent.
type Backend interface {
	StorageRead(key []byte) ([]byte, error)
	StorageWrite(key, value []byte) error
}

type Context struct {
	backend Backend
}

func NewContext(backend Backend) *Context {
	return &Context{backend: backend}
}

// decode reads the value under key into val. It reports false if the key is absent.
func (c *Context) decode(key []byte, val any) (bool, error) {
	raw, err := c.backend.StorageRead(key)
	if err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := rlp.DecodeBytes(raw, val); err != nil {
		return false, errors.Wrapf(err, "decode storage %q", key)
	}
	return true, nil
}

func (c *Context) encode(key []byte, val any) error {
	raw, err := rlp.EncodeToBytes(val)
	if err != nil {
		return errors.Wrapf(err, "encode storage %q", key)
	}
	return c.backend.StorageWrite(key, raw)
}

func concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return buf
}
