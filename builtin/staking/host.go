// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/vechain/stakeledger/builtin/storage"
	"github.com/vechain/stakeledger/core"
)

// Host is the capability set the ledger needs from the execution host.
// Every method acts on behalf of the call currently executing.
type Host interface {
	storage.Backend

	// PredecessorAccountID returns the account that invoked the call.
	PredecessorAccountID() core.AccountID
	// CurrentAccountID returns the account the ledger is deployed at.
	CurrentAccountID() core.AccountID
	// AttachedDeposit returns the native amount attached to the call.
	AttachedDeposit() core.Amount
	// AccountBalance returns the native balance of the current account, attached deposit included.
	AccountBalance() (core.Amount, error)
	// Transfer schedules a native transfer from the current account.
	// It's settled by the host after the call returns, and its result is not observable by the ledger.
	Transfer(receiver core.AccountID, amount core.Amount)
	// Log emits a log message.
	Log(msg string)
}
