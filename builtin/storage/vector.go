// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Vector is an index-addressed list of values under a prefix.
// The length lives under the prefix itself, element i under prefix + big-endian(i).
type Vector[V any] struct {
	context *Context
	prefix  []byte
}

func NewVector[V any](context *Context, prefix []byte) *Vector[V] {
	return &Vector[V]{context: context, prefix: prefix}
}

func (v *Vector[V]) indexKey(index uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], index)
	return concat(v.prefix, b[:])
}

func (v *Vector[V]) Len() (uint64, error) {
	var n uint64
	if _, err := v.context.decode(v.prefix, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (v *Vector[V]) Get(index uint64) (value V, err error) {
	exists, err := v.context.decode(v.indexKey(index), &value)
	if err != nil {
		return
	}
	if !exists {
		err = errors.Errorf("vector %q: index %d out of bounds", v.prefix, index)
	}
	return
}

// Set replaces the element at index, which must be lower than the length.
func (v *Vector[V]) Set(index uint64, value V) error {
	n, err := v.Len()
	if err != nil {
		return err
	}
	if index >= n {
		return errors.Errorf("vector %q: index %d out of bounds", v.prefix, index)
	}
	return v.context.encode(v.indexKey(index), value)
}

// Push appends value and returns its index.
func (v *Vector[V]) Push(value V) (uint64, error) {
	n, err := v.Len()
	if err != nil {
		return 0, err
	}
	if err := v.context.encode(v.indexKey(n), value); err != nil {
		return 0, err
	}
	if err := v.context.encode(v.prefix, n+1); err != nil {
		return 0, err
	}
	return n, nil
}
