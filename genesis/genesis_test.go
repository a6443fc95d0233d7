// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/kv"
	"github.com/vechain/stakeledger/lvldb"
	"github.com/vechain/stakeledger/state"
)

const testGenesis = `
contract: staking.test
accounts:
  - id: alice.test
    balance: 1000
  - id: bob.test
    balance: "340282366920938463463374607431768211455"
`

func TestParse(t *testing.T) {
	gen, err := Parse([]byte(testGenesis))
	require.NoError(t, err)

	assert.Equal(t, core.AccountID("staking.test"), gen.Contract)
	require.Len(t, gen.Accounts, 2)
	assert.Equal(t, core.NewAmount(1000), gen.Accounts[0].Balance)
	assert.Equal(t, core.MaxAmount, gen.Accounts[1].Balance)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad contract", "contract: Bad!"},
		{"bad account", "contract: c.test\naccounts:\n  - id: A\n    balance: 1"},
		{"duplicated", "contract: c.test\naccounts:\n  - id: a.test\n    balance: 1\n  - id: a.test\n    balance: 2"},
		{"bad balance", "contract: c.test\naccounts:\n  - id: a.test\n    balance: -1"},
		{"malformed", "contract: [c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testGenesis), 0o600))

	gen, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, gen.Accounts, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	gen, err := Parse([]byte(testGenesis))
	require.NoError(t, err)

	_, err = LoadContract(db)
	assert.Error(t, err)

	_, err = gen.Build(db)
	require.NoError(t, err)

	contract, err := LoadContract(db)
	require.NoError(t, err)
	assert.Equal(t, gen.Contract, contract)

	// balances are committed
	st := state.New(db)
	bal, err := st.GetBalance("alice.test")
	require.NoError(t, err)
	assert.Equal(t, core.NewAmount(1000), bal)

	// building twice is rejected
	_, err = gen.Build(db)
	assert.Error(t, err)
}

func TestDevnet(t *testing.T) {
	gen := NewDevnet()
	require.NoError(t, gen.Validate())
	assert.Equal(t, DevContract, gen.Contract)
	assert.Len(t, gen.Accounts, 4)
}

type failingHasStore struct {
	kv.Store
}

func (s failingHasStore) Has([]byte) (bool, error) {
	return false, errors.New("io error")
}

func TestBuildStoreError(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	// a store whose reads fail must not be taken as empty
	_, err = NewDevnet().Build(failingHasStore{db})
	assert.ErrorContains(t, err, "io error")

	_, err = LoadContract(db)
	assert.Error(t, err)
}
