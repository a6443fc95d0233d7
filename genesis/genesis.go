// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/kv"
	"github.com/vechain/stakeledger/state"
)

// Genesis describes the initial world.
type Genesis struct {
	Contract core.AccountID `yaml:"contract"`
	Accounts []Account      `yaml:"accounts"`
}

// Account is a funded account.
type Account struct {
	ID      core.AccountID `yaml:"id"`
	Balance core.Amount    `yaml:"balance"`
}

// Parse decodes and validates a YAML genesis.
func Parse(data []byte) (*Genesis, error) {
	var gen Genesis
	if err := yaml.Unmarshal(data, &gen); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	if err := gen.Validate(); err != nil {
		return nil, err
	}
	return &gen, nil
}

// Load reads the genesis from file.
func Load(path string) (*Genesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis")
	}
	gen, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return gen, nil
}

// Validate checks account ids and rejects duplicated accounts.
func (g *Genesis) Validate() error {
	if _, err := core.ParseAccountID(string(g.Contract)); err != nil {
		return errors.Wrap(err, "contract")
	}
	seen := make(map[core.AccountID]bool, len(g.Accounts))
	for i, a := range g.Accounts {
		if _, err := core.ParseAccountID(string(a.ID)); err != nil {
			return errors.Wrapf(err, "accounts[%d]", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("accounts[%d]: duplicated account %s", i, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// Build writes the genesis into db and returns the resulting state.
func (g *Genesis) Build(db kv.Store) (*state.State, error) {
	return new(Builder).
		Contract(g.Contract).
		State(func(state *state.State) error {
			for _, a := range g.Accounts {
				state.SetBalance(a.ID, a.Balance)
			}
			return nil
		}).
		Build(db)
}
