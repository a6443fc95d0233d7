// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"bytes"
	"encoding/json"

	"github.com/vechain/stakeledger/builtin/reverts"
	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/xenv"
)

var (
	errMissingAmount  = reverts.NewRequireError("failed to deserialize input from JSON: missing field `amount`")
	errAmountNotText  = reverts.NewRequireError("failed to deserialize input from JSON: invalid type: integer, expected a string")
	errAmountNotInt   = reverts.NewRequireError("failed to deserialize input from JSON: invalid type: string, expected u128")
	errAmountNotValid = reverts.NewRequireError("failed to deserialize input from JSON: invalid amount")
)

type amountArgs struct {
	Amount json.RawMessage `json:"amount"`
}

// parseAmount decodes the amount arg, a JSON string if quoted, otherwise a JSON number.
func parseAmount(env *xenv.Environment, quoted bool) core.Amount {
	var args amountArgs
	env.ParseArgs(&args)

	raw := bytes.TrimSpace(args.Amount)
	env.Require(len(raw) > 0 && !bytes.Equal(raw, []byte("null")), errMissingAmount)
	if quoted {
		env.Require(raw[0] == '"', errAmountNotText)
	} else {
		env.Require(raw[0] != '"', errAmountNotInt)
	}

	var amount core.Amount
	env.Require(amount.UnmarshalJSON(raw) == nil, errAmountNotValid)
	return amount
}

func init() {
	defines := []struct {
		name    string
		payable bool
		view    bool
		run     func(env *xenv.Environment) (any, error)
	}{
		{"new", false, false, func(env *xenv.Environment) (any, error) {
			return nil, Staking.Native(env).Init()
		}},
		{"stake", true, false, func(env *xenv.Environment) (any, error) {
			return Staking.Native(env).Stake()
		}},
		{"unstake", false, false, func(env *xenv.Environment) (any, error) {
			amount := parseAmount(env, true)
			return Staking.Native(env).Unstake(amount)
		}},
		{"airdrop", false, false, func(env *xenv.Environment) (any, error) {
			amount := parseAmount(env, false)
			return nil, Staking.Native(env).Airdrop(amount)
		}},
		{"get_total_staked", false, true, func(env *xenv.Environment) (any, error) {
			return Staking.Native(env).TotalStaked()
		}},
		{"get_user_staked", false, true, func(env *xenv.Environment) (any, error) {
			return Staking.Native(env).UserStaked()
		}},
		{"get_total_balance", false, true, func(env *xenv.Environment) (any, error) {
			return Staking.Native(env).TotalBalance()
		}},
		{"get_account_id", false, true, func(env *xenv.Environment) (any, error) {
			return Staking.Native(env).AccountID()
		}},
	}
	for _, def := range defines {
		Staking.impl(def.name, def.payable, def.view, def.run)
	}
}
