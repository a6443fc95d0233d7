// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/pkg/errors"

	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/kv"
	"github.com/vechain/stakeledger/state"
)

var (
	metaBucket  = kv.Bucket("m")
	contractKey = []byte("contract")
)

// Builder helper to build the genesis world state.
type Builder struct {
	contract   core.AccountID
	stateProcs []func(state *state.State) error
}

// Contract sets the account the staking contract is deployed at.
func (b *Builder) Contract(id core.AccountID) *Builder {
	b.contract = id
	return b
}

// State add a state process
func (b *Builder) State(proc func(state *state.State) error) *Builder {
	b.stateProcs = append(b.stateProcs, proc)
	return b
}

// Build writes the genesis state and the contract id into db.
func (b *Builder) Build(db kv.Store) (*state.State, error) {
	if b.contract.IsZero() {
		return nil, errors.New("contract account is required")
	}
	initialized, err := metaBucket.NewGetter(db).Has(contractKey)
	if err != nil {
		return nil, errors.Wrap(err, "load contract")
	}
	if initialized {
		return nil, errors.New("store is already initialized")
	}

	st := state.New(db)
	for _, proc := range b.stateProcs {
		if err := proc(st); err != nil {
			return nil, errors.Wrap(err, "state process")
		}
	}
	if err := st.Stage().Commit(); err != nil {
		return nil, errors.Wrap(err, "commit state")
	}
	if err := metaBucket.NewPutter(db).Put(contractKey, b.contract.Bytes()); err != nil {
		return nil, errors.Wrap(err, "save contract")
	}
	return st, nil
}

// LoadContract returns the contract account recorded by Build.
func LoadContract(db kv.Getter) (core.AccountID, error) {
	data, err := metaBucket.NewGetter(db).Get(contractKey)
	if err != nil {
		return "", errors.Wrap(err, "load contract")
	}
	return core.ParseAccountID(string(data))
}
