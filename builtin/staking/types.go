// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/vechain/stakeledger/builtin/reverts"
	"github.com/vechain/stakeledger/core"
)

var (
	stateKey       = []byte("STATE")
	balancesPrefix = []byte("s")
)

var (
	ErrAlreadyInitialized = reverts.NewRequireError("the contract has already been initialized")
	ErrNotInitialized     = reverts.NewRequireError("the contract is not initialized")
	ErrZeroAmount         = reverts.NewRequireError("amount must be greater than zero")
	ErrNotOwner           = reverts.NewRequireError("only the owner can airdrop")
)

// record is the persisted ledger singleton.
type record struct {
	Owner          core.AccountID
	BalancesPrefix []byte
	TotalStaked    core.Amount
}
