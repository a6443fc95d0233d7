// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

import (
	"github.com/pkg/errors"

	"github.com/vechain/stakeledger/core"
)

type Key interface {
	comparable
	Bytes() []byte
}

// UnorderedMap is an iterable key/value storage. Entries are kept in two parallel vectors
// (keys and values), plus a lookup from key to position. Iteration follows insertion order.
type UnorderedMap[K Key, V any] struct {
	context *Context
	prefix  []byte
	keys    *Vector[K]
	values  *Vector[V]
}

func NewUnorderedMap[K Key, V any](context *Context, prefix []byte) *UnorderedMap[K, V] {
	return &UnorderedMap[K, V]{
		context: context,
		prefix:  prefix,
		keys:    NewVector[K](context, concat(prefix, []byte("k"))),
		values:  NewVector[V](context, concat(prefix, []byte("v"))),
	}
}

// lookup keys are hashed to keep them fixed-size.
func (m *UnorderedMap[K, V]) lookupKey(key K) []byte {
	return concat(m.prefix, []byte("i"), core.Blake2b(key.Bytes()).Bytes())
}

func (m *UnorderedMap[K, V]) index(key K) (uint64, bool, error) {
	var idx uint64
	exists, err := m.context.decode(m.lookupKey(key), &idx)
	return idx, exists, err
}

// Get returns the value of key. exists is false if key was never inserted.
func (m *UnorderedMap[K, V]) Get(key K) (value V, exists bool, err error) {
	idx, exists, err := m.index(key)
	if err != nil || !exists {
		return
	}
	value, err = m.values.Get(idx)
	if err != nil {
		err = errors.Wrap(err, "get map value")
	}
	return
}

// Insert sets the value of key, and reports whether key was present before.
func (m *UnorderedMap[K, V]) Insert(key K, value V) (bool, error) {
	idx, exists, err := m.index(key)
	if err != nil {
		return false, err
	}
	if exists {
		return true, m.values.Set(idx, value)
	}

	if idx, err = m.keys.Push(key); err != nil {
		return false, errors.Wrap(err, "push map key")
	}
	if _, err := m.values.Push(value); err != nil {
		return false, errors.Wrap(err, "push map value")
	}
	return false, m.context.encode(m.lookupKey(key), idx)
}

func (m *UnorderedMap[K, V]) Len() (uint64, error) {
	return m.keys.Len()
}

// Iterate calls fn for each entry in insertion order, until fn returns false.
func (m *UnorderedMap[K, V]) Iterate(fn func(key K, value V) bool) error {
	n, err := m.Len()
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		key, err := m.keys.Get(i)
		if err != nil {
			return err
		}
		value, err := m.values.Get(i)
		if err != nil {
			return err
		}
		if !fn(key, value) {
			return nil
		}
	}
	return nil
}
