// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package storage

// Record is a single value stored under a fixed key.
type Record[V any] struct {
	context *Context
	key     []byte
}

func NewRecord[V any](context *Context, key []byte) *Record[V] {
	return &Record[V]{context: context, key: key}
}

// Get returns the stored value. exists is false if nothing was ever stored.
func (r *Record[V]) Get() (value V, exists bool, err error) {
	exists, err = r.context.decode(r.key, &value)
	return
}

func (r *Record[V]) Set(value V) error {
	return r.context.encode(r.key, value)
}
