// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"github.com/vechain/stakeledger/builtin/staking"
	"github.com/vechain/stakeledger/xenv"
)

var _ staking.Host = (*xenv.Environment)(nil)

// Builtin contracts binding.
var Staking = &stakingContract{newContract("staking")}

type stakingContract struct{ *contract }

// Native binds the ledger to the environment of the executing call.
func (s *stakingContract) Native(env *xenv.Environment) *staking.Ledger {
	return staking.New(env)
}
