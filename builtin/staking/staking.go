// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/vechain/stakeledger/builtin/storage"
	"github.com/vechain/stakeledger/core"
)

var logger = log.New("pkg", "staking")

// Ledger implements the staking contract on top of a Host.
type Ledger struct {
	host   Host
	ctx    *storage.Context
	record *storage.Record[*record]
}

// New creates a ledger bound to the host of the current call.
func New(host Host) *Ledger {
	ctx := storage.NewContext(host)
	return &Ledger{
		host:   host,
		ctx:    ctx,
		record: storage.NewRecord[*record](ctx, stateKey),
	}
}

func (l *Ledger) load() (*record, *storage.UnorderedMap[core.AccountID, core.Amount], error) {
	rec, exists, err := l.record.Get()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load ledger")
	}
	if !exists {
		return nil, nil, ErrNotInitialized
	}
	return rec, storage.NewUnorderedMap[core.AccountID, core.Amount](l.ctx, rec.BalancesPrefix), nil
}

func (l *Ledger) save(rec *record) error {
	if err := l.record.Set(rec); err != nil {
		return errors.Wrap(err, "save ledger")
	}
	return nil
}

// Init creates the ledger, owned by the caller. It can be done only once.
func (l *Ledger) Init() error {
	_, exists, err := l.record.Get()
	if err != nil {
		return errors.Wrap(err, "load ledger")
	}
	if exists {
		return ErrAlreadyInitialized
	}
	owner := l.host.PredecessorAccountID()
	logger.Debug("ledger initialized", "owner", owner, "account", l.host.CurrentAccountID())
	return l.save(&record{
		Owner:          owner,
		BalancesPrefix: balancesPrefix,
	})
}

// Stake credits the attached deposit to the caller and returns the caller's new balance.
func (l *Ledger) Stake() (core.Amount, error) {
	rec, balances, err := l.load()
	if err != nil {
		return core.Amount{}, err
	}
	var (
		deposit = l.host.AttachedDeposit()
		user    = l.host.PredecessorAccountID()
	)
	l.host.Log(fmt.Sprintf("%s is staking %s", user, deposit))

	balance, _, err := balances.Get(user)
	if err != nil {
		return core.Amount{}, errors.Wrap(err, "get stake")
	}
	newBalance := balance.SaturatingAdd(deposit)
	if _, err := balances.Insert(user, newBalance); err != nil {
		return core.Amount{}, errors.Wrap(err, "set stake")
	}
	rec.TotalStaked = rec.TotalStaked.SaturatingAdd(deposit)
	if err := l.save(rec); err != nil {
		return core.Amount{}, err
	}
	return newBalance, nil
}

// Unstake withdraws amount from the caller's stake. It returns false if the caller never staked.
//
// The refund is the whole previous balance when the new balance saturates to zero,
// otherwise exactly amount.
func (l *Ledger) Unstake(amount core.Amount) (bool, error) {
	rec, balances, err := l.load()
	if err != nil {
		return false, err
	}
	if amount.IsZero() {
		return false, ErrZeroAmount
	}
	user := l.host.PredecessorAccountID()
	l.host.Log(fmt.Sprintf("%s is unstaking %s", user, amount))

	balance, exists, err := balances.Get(user)
	if err != nil {
		return false, errors.Wrap(err, "get stake")
	}
	if !exists {
		return false, nil
	}

	newBalance := balance.SaturatingSub(amount)
	if _, err := balances.Insert(user, newBalance); err != nil {
		return false, errors.Wrap(err, "set stake")
	}
	rec.TotalStaked = rec.TotalStaked.SaturatingSub(amount)
	if err := l.save(rec); err != nil {
		return false, err
	}

	if newBalance.IsZero() {
		l.host.Transfer(user, balance)
	} else {
		l.host.Transfer(user, amount)
	}
	return true, nil
}

// Airdrop sends amount to every account ever staked, zero balances included. Owner only.
func (l *Ledger) Airdrop(amount core.Amount) error {
	rec, balances, err := l.load()
	if err != nil {
		return err
	}
	if l.host.PredecessorAccountID() != rec.Owner {
		return ErrNotOwner
	}
	return balances.Iterate(func(staker core.AccountID, _ core.Amount) bool {
		l.host.Transfer(staker, amount)
		return true
	})
}

// TotalStaked returns the sum of all stakes.
func (l *Ledger) TotalStaked() (core.Amount, error) {
	rec, _, err := l.load()
	if err != nil {
		return core.Amount{}, err
	}
	return rec.TotalStaked, nil
}

// UserStaked returns the caller's stake, 0 if the caller never staked.
func (l *Ledger) UserStaked() (core.Amount, error) {
	_, balances, err := l.load()
	if err != nil {
		return core.Amount{}, err
	}
	balance, _, err := balances.Get(l.host.PredecessorAccountID())
	if err != nil {
		return core.Amount{}, errors.Wrap(err, "get stake")
	}
	return balance, nil
}

// TotalBalance returns the native balance held by the ledger account.
func (l *Ledger) TotalBalance() (core.Amount, error) {
	if _, _, err := l.load(); err != nil {
		return core.Amount{}, err
	}
	return l.host.AccountBalance()
}

// AccountID returns the account the ledger is deployed at.
func (l *Ledger) AccountID() (core.AccountID, error) {
	if _, _, err := l.load(); err != nil {
		return "", err
	}
	return l.host.CurrentAccountID(), nil
}

// Owner returns the account that initialized the ledger.
func (l *Ledger) Owner() (core.AccountID, error) {
	rec, _, err := l.load()
	if err != nil {
		return "", err
	}
	return rec.Owner, nil
}
