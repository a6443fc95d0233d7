// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/vechain/stakeledger/core"
)

// DevContract is the contract account of the dev genesis.
var DevContract = core.MustParseAccountID("staking.test")

// DevAccounts returns pre-funded accounts for development.
func DevAccounts() []Account {
	balance := core.MustParseAmount("1000000000000000000000000000")
	names := []string{"owner.test", "alice.test", "bob.test", "carol.test"}

	accounts := make([]Account, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, Account{ID: core.MustParseAccountID(name), Balance: balance})
	}
	return accounts
}

// NewDevnet create genesis for development.
func NewDevnet() *Genesis {
	return &Genesis{
		Contract: DevContract,
		Accounts: DevAccounts(),
	}
}
