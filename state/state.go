// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/stakeledger/cache"
	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/kv"
	"github.com/vechain/stakeledger/stackedmap"
)

const (
	balanceBucket = kv.Bucket("b")
	storageBucket = kv.Bucket("s")

	cacheSize = 4096
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// Cause returns the underlying error.
func (e *Error) Cause() error {
	return e.cause
}

type (
	balanceKey core.AccountID
	storageKey struct {
		account core.AccountID
		key     string
	}
)

// storage keys are prefixed by the account id and a zero byte, which never appears in a valid id.
func (k storageKey) dbKey() []byte {
	return storageDBKey(k.account, []byte(k.key))
}

func storageDBKey(account core.AccountID, key []byte) []byte {
	buf := make([]byte, 0, len(account)+1+len(key))
	buf = append(buf, []byte(account)...)
	buf = append(buf, 0)
	return append(buf, key...)
}

var logger = log.New("pkg", "state")

// State manages the world state.
type State struct {
	db    kv.Store
	cache *cache.LRU // committed values, keyed like the stacked map
	sm    *stackedmap.StackedMap
}

// New create state object.
func New(db kv.Store) *State {
	lru, _ := cache.NewLRU(cacheSize)
	s := &State{
		db:    db,
		cache: lru,
	}
	s.Reset()
	return s
}

// Reset drops all uncommitted changes.
func (s *State) Reset() {
	s.sm = stackedmap.New(func(key any) (any, bool, error) {
		v, err := s.cache.GetOrLoad(key, s.load)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	})
}

// load reads committed value from db.
func (s *State) load(key any) (any, error) {
	switch k := key.(type) {
	case balanceKey:
		raw, err := s.get(balanceBucket.NewGetter(s.db), []byte(k))
		if err != nil {
			return nil, err
		}
		var bal core.Amount
		if len(raw) > 0 {
			if err := rlp.DecodeBytes(raw, &bal); err != nil {
				return nil, err
			}
		}
		return bal, nil
	case storageKey:
		return s.get(storageBucket.NewGetter(s.db), k.dbKey())
	}
	panic(fmt.Errorf("unexpected key type %+v", key))
}

func (s *State) get(getter kv.Getter, key []byte) ([]byte, error) {
	raw, err := getter.Get(key)
	if err != nil {
		if getter.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

// GetBalance returns balance for the given account.
func (s *State) GetBalance(account core.AccountID) (core.Amount, error) {
	v, _, err := s.sm.Get(balanceKey(account))
	if err != nil {
		return core.Amount{}, &Error{err}
	}
	return v.(core.Amount), nil
}

// SetBalance set balance for the given account.
func (s *State) SetBalance(account core.AccountID, balance core.Amount) {
	s.sm.Put(balanceKey(account), balance)
}

// AddBalance credits amount to the account. The balance saturates at core.MaxAmount.
func (s *State) AddBalance(account core.AccountID, amount core.Amount) error {
	bal, err := s.GetBalance(account)
	if err != nil {
		return err
	}
	s.SetBalance(account, bal.SaturatingAdd(amount))
	return nil
}

// SubBalance debits amount from the account.
// It returns false and leaves the balance untouched if the balance is insufficient.
func (s *State) SubBalance(account core.AccountID, amount core.Amount) (bool, error) {
	bal, err := s.GetBalance(account)
	if err != nil {
		return false, err
	}
	remained, ok := bal.CheckedSub(amount)
	if !ok {
		return false, nil
	}
	s.SetBalance(account, remained)
	return true, nil
}

// GetStorage returns raw storage value for the given account and key.
// A nil value is returned if the key is absent.
func (s *State) GetStorage(account core.AccountID, key []byte) ([]byte, error) {
	v, _, err := s.sm.Get(storageKey{account, string(key)})
	if err != nil {
		return nil, &Error{err}
	}
	return v.([]byte), nil
}

// SetStorage set raw storage value for the given account and key.
// An empty value removes the key.
func (s *State) SetStorage(account core.AccountID, key, value []byte) {
	if len(value) == 0 {
		value = nil
	} else {
		value = bytes.Clone(value)
	}
	s.sm.Put(storageKey{account, string(key)}, value)
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Stage makes a stage object to commit all changes.
func (s *State) Stage() *Stage {
	stage := &Stage{
		state:    s,
		balances: make(map[core.AccountID]core.Amount),
		storage:  make(map[storageKey][]byte),
	}
	s.sm.Journal(func(k, v any) bool {
		switch key := k.(type) {
		case balanceKey:
			stage.balances[core.AccountID(key)] = v.(core.Amount)
		case storageKey:
			stage.storage[key] = v.([]byte)
		}
		return true
	})
	return stage
}

// IterateBalances calls fn for every account with non-zero committed balance, ordered by account id.
func IterateBalances(src kv.Reader, fn func(core.AccountID, core.Amount) bool) error {
	iter := balanceBucket.NewReader(src).Iterate(kv.Range{})
	defer iter.Release()

	for iter.Next() {
		var bal core.Amount
		if err := rlp.DecodeBytes(iter.Value(), &bal); err != nil {
			return &Error{err}
		}
		if !fn(core.AccountID(iter.Key()), bal) {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return &Error{err}
	}
	return nil
}
