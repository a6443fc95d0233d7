// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/stakeledger/core"
)

// Stage abstracts the accumulated changes of a state.
type Stage struct {
	state    *State
	balances map[core.AccountID]core.Amount
	storage  map[storageKey][]byte
}

// Len returns the count of changed entries.
func (s *Stage) Len() int {
	return len(s.balances) + len(s.storage)
}

// Commit writes all changes into the kv store in one bulk, and clears the journal of the state.
func (s *Stage) Commit() error {
	var (
		bulk     = s.state.db.Bulk()
		balances = balanceBucket.NewPutter(bulk)
		storage  = storageBucket.NewPutter(bulk)
	)

	for account, bal := range s.balances {
		if bal.IsZero() {
			if err := balances.Delete([]byte(account)); err != nil {
				return &Error{err}
			}
			continue
		}
		data, err := rlp.EncodeToBytes(bal)
		if err != nil {
			return &Error{err}
		}
		if err := balances.Put([]byte(account), data); err != nil {
			return &Error{err}
		}
	}

	for key, val := range s.storage {
		var err error
		if len(val) == 0 {
			err = storage.Delete(key.dbKey())
		} else {
			err = storage.Put(key.dbKey(), val)
		}
		if err != nil {
			return &Error{err}
		}
	}

	if err := bulk.Write(); err != nil {
		return &Error{err}
	}

	// committed values become the cached source of the fresh journal
	for account, bal := range s.balances {
		s.state.cache.Add(balanceKey(account), bal)
	}
	for key, val := range s.storage {
		s.state.cache.Add(key, val)
	}
	if changed, hit, miss := s.state.cache.Stats().Stats(); changed {
		logger.Debug("state cache stats", "hit", hit, "miss", miss)
	}
	s.state.Reset()
	return nil
}
