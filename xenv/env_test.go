// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakeledger/builtin/reverts"
	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/lvldb"
	"github.com/vechain/stakeledger/state"
)

func newEnv(t *testing.T, gas uint64, input string) *Environment {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(state.New(db), &CallContext{
		Contract:    "staking.near",
		Predecessor: "alice.near",
		Deposit:     core.NewAmount(3),
		Gas:         gas,
	}, []byte(input))
}

func TestEnvironmentHost(t *testing.T) {
	env := newEnv(t, core.DefaultGas, "")
	env.State().SetBalance("staking.near", core.NewAmount(10))

	assert.Equal(t, core.AccountID("alice.near"), env.PredecessorAccountID())
	assert.Equal(t, core.AccountID("staking.near"), env.CurrentAccountID())
	assert.Equal(t, core.NewAmount(3), env.AttachedDeposit())

	bal, err := env.AccountBalance()
	require.NoError(t, err)
	assert.Equal(t, core.NewAmount(10), bal)

	require.NoError(t, env.StorageWrite([]byte("k"), []byte("v")))
	raw, err := env.StorageRead([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), raw)
	stored, _ := env.State().GetStorage("staking.near", []byte("k"))
	assert.Equal(t, []byte("v"), stored)

	env.Transfer("bob.near", core.NewAmount(1))
	env.Log("hello")
	assert.Equal(t, []*Promise{{Receiver: "bob.near", Amount: core.NewAmount(1)}}, env.Promises())
	assert.Equal(t, []string{"hello"}, env.Logs())

	expected := core.StorageWriteGas(1, 1) + core.StorageReadGas(1, 1) + core.TransferGas + core.LogGas(5)
	assert.Equal(t, expected, env.GasUsed())
	assert.Equal(t, expected, env.Charger().TotalGas())
}

func TestCallOutput(t *testing.T) {
	env := newEnv(t, core.DefaultGas, `{"amount":"7"}`)

	data, err := env.Call(func(env *Environment) (any, error) {
		var args struct {
			Amount core.Amount `json:"amount"`
		}
		env.ParseArgs(&args)
		return args.Amount, nil
	})()
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))

	data, err = env.Call(func(*Environment) (any, error) { return nil, nil })()
	assert.NoError(t, err)
	assert.Nil(t, data)

	_, err = env.Call(func(*Environment) (any, error) { return nil, errors.New("boom") })()
	assert.EqualError(t, err, "boom")
}

func TestCallAborts(t *testing.T) {
	env := newEnv(t, core.DefaultGas, `{"amount":`)
	_, err := env.Call(func(env *Environment) (any, error) {
		var args struct {
			Amount core.Amount `json:"amount"`
		}
		env.ParseArgs(&args)
		return nil, nil
	})()
	assert.True(t, reverts.IsRequire(err))

	reqErr := reverts.NewRequireError("nope")
	_, err = env.Call(func(env *Environment) (any, error) {
		env.Require(false, reqErr)
		return true, nil
	})()
	assert.Equal(t, reqErr, err)

	assert.Panics(t, func() {
		env.Call(func(*Environment) (any, error) { panic("unexpected") })()
	})
}

func TestOutOfGas(t *testing.T) {
	env := newEnv(t, core.TransferGas+1, "")
	_, err := env.Call(func(env *Environment) (any, error) {
		env.Transfer("bob.near", core.NewAmount(1))
		env.Transfer("bob.near", core.NewAmount(1))
		return nil, nil
	})()
	assert.Equal(t, ErrOutOfGas, err)
	assert.Equal(t, core.TransferGas+1, env.GasUsed())
}
