// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"fmt"

	"github.com/vechain/stakeledger/builtin/reverts"
	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/xenv"
)

// NativeMethod describes a callable entry point of a builtin contract.
type NativeMethod struct {
	Name    string
	Payable bool // accepts attached deposit
	View    bool // never mutates state
	run     func(env *xenv.Environment) (any, error)
}

// Call runs the method in env, and returns the JSON encoded output.
// Base gas of a function call is charged before the method runs.
func (m *NativeMethod) Call(env *xenv.Environment) ([]byte, error) {
	return env.Call(func(env *xenv.Environment) (any, error) {
		env.Charger().Charge(core.FunctionCallBaseGas)
		env.Require(m.Payable || env.AttachedDeposit().IsZero(),
			reverts.NewRequireError(fmt.Sprintf("method %s doesn't accept deposit", m.Name)))
		return m.run(env)
	})()
}
