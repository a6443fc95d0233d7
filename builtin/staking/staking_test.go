// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakeledger/core"
)

type transfer struct {
	to     core.AccountID
	amount core.Amount
}

// fakeHost keeps storage in memory and records transfers instead of settling them.
type fakeHost struct {
	contract    core.AccountID
	predecessor core.AccountID
	deposit     core.Amount
	balance     core.Amount

	storage   map[string][]byte
	transfers []transfer
	logs      []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		contract: "staking.near",
		storage:  make(map[string][]byte),
	}
}

func (h *fakeHost) StorageRead(key []byte) ([]byte, error) { return h.storage[string(key)], nil }
func (h *fakeHost) StorageWrite(key, value []byte) error {
	h.storage[string(key)] = value
	return nil
}
func (h *fakeHost) PredecessorAccountID() core.AccountID { return h.predecessor }
func (h *fakeHost) CurrentAccountID() core.AccountID     { return h.contract }
func (h *fakeHost) AttachedDeposit() core.Amount         { return h.deposit }
func (h *fakeHost) AccountBalance() (core.Amount, error) { return h.balance, nil }
func (h *fakeHost) Transfer(receiver core.AccountID, amount core.Amount) {
	h.transfers = append(h.transfers, transfer{receiver, amount})
}
func (h *fakeHost) Log(msg string) { h.logs = append(h.logs, msg) }

// as switches the caller and clears per-call effects.
func (h *fakeHost) as(caller core.AccountID, deposit uint64) *Ledger {
	h.predecessor = caller
	h.deposit = core.NewAmount(deposit)
	h.balance = h.balance.SaturatingAdd(h.deposit)
	h.transfers = nil
	h.logs = nil
	return New(h)
}

func (h *fakeHost) snapshot() map[string]string {
	snap := make(map[string]string, len(h.storage))
	for k, v := range h.storage {
		snap[k] = string(v)
	}
	return snap
}

const (
	owner = core.AccountID("owner.near")
	alice = core.AccountID("alice.near")
	bob   = core.AccountID("bob.near")
)

func newInitializedHost(t *testing.T) *fakeHost {
	h := newFakeHost()
	require.NoError(t, h.as(owner, 0).Init())
	return h
}

func TestInit(t *testing.T) {
	h := newFakeHost()

	_, err := h.as(alice, 0).TotalStaked()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = h.as(alice, 10).Stake()
	assert.ErrorIs(t, err, ErrNotInitialized)

	require.NoError(t, h.as(owner, 0).Init())
	snap := h.snapshot()

	assert.ErrorIs(t, h.as(alice, 0).Init(), ErrAlreadyInitialized)
	assert.Equal(t, snap, h.snapshot())

	got, err := h.as(alice, 0).Owner()
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	total, err := h.as(alice, 0).TotalStaked()
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestStake(t *testing.T) {
	h := newInitializedHost(t)

	bal, err := h.as(alice, 100).Stake()
	require.NoError(t, err)
	assert.Equal(t, core.NewAmount(100), bal)
	assert.Equal(t, []string{"alice.near is staking 100"}, h.logs)
	assert.Empty(t, h.transfers)

	bal, err = h.as(alice, 50).Stake()
	require.NoError(t, err)
	assert.Equal(t, core.NewAmount(150), bal)

	bal, err = h.as(bob, 0).Stake()
	require.NoError(t, err)
	assert.True(t, bal.IsZero())

	total, err := h.as(bob, 0).TotalStaked()
	require.NoError(t, err)
	assert.Equal(t, core.NewAmount(150), total)

	staked, err := h.as(alice, 0).UserStaked()
	require.NoError(t, err)
	assert.Equal(t, core.NewAmount(150), staked)

	staked, err = h.as("carol.near", 0).UserStaked()
	require.NoError(t, err)
	assert.True(t, staked.IsZero())
}

func TestStakeSaturates(t *testing.T) {
	h := newInitializedHost(t)
	l := h.as(alice, 0)
	h.deposit = core.MaxAmount
	_, err := l.Stake()
	require.NoError(t, err)

	bal, err := h.as(alice, 1).Stake()
	require.NoError(t, err)
	assert.Equal(t, core.MaxAmount, bal)

	total, err := h.as(alice, 0).TotalStaked()
	require.NoError(t, err)
	assert.Equal(t, core.MaxAmount, total)
}

func TestUnstake(t *testing.T) {
	tests := []struct {
		name        string
		staked      uint64
		unstake     uint64
		newBalance  uint64
		refund      uint64
		totalStaked uint64
	}{
		{"partial", 100, 40, 60, 40, 60},
		{"exact", 100, 100, 0, 100, 0},
		{"more than balance refunds balance", 100, 150, 0, 100, 0},
		{"huge amount refunds balance", 100, 1 << 62, 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newInitializedHost(t)
			_, err := h.as(alice, tt.staked).Stake()
			require.NoError(t, err)

			ok, err := h.as(alice, 0).Unstake(core.NewAmount(tt.unstake))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []transfer{{alice, core.NewAmount(tt.refund)}}, h.transfers)

			bal, err := h.as(alice, 0).UserStaked()
			require.NoError(t, err)
			assert.Equal(t, core.NewAmount(tt.newBalance), bal)

			total, err := h.as(alice, 0).TotalStaked()
			require.NoError(t, err)
			assert.Equal(t, core.NewAmount(tt.totalStaked), total)
		})
	}
}

func TestUnstakeZeroFails(t *testing.T) {
	h := newInitializedHost(t)
	_, err := h.as(alice, 100).Stake()
	require.NoError(t, err)
	snap := h.snapshot()

	ok, err := h.as(alice, 0).Unstake(core.Amount{})
	assert.ErrorIs(t, err, ErrZeroAmount)
	assert.False(t, ok)
	assert.Empty(t, h.transfers)
	assert.Equal(t, snap, h.snapshot())
}

func TestUnstakeWithoutStake(t *testing.T) {
	h := newInitializedHost(t)
	snap := h.snapshot()

	ok, err := h.as(bob, 0).Unstake(core.NewAmount(1))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, h.transfers)
	assert.Equal(t, snap, h.snapshot())
	assert.Equal(t, []string{"bob.near is unstaking 1"}, h.logs)
}

func TestUnstakeDrainedEntry(t *testing.T) {
	h := newInitializedHost(t)
	_, err := h.as(alice, 100).Stake()
	require.NoError(t, err)

	ok, err := h.as(alice, 0).Unstake(core.NewAmount(150))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []transfer{{alice, core.NewAmount(100)}}, h.transfers)

	// the zero entry still exists: it matches, saturates to zero, and refunds the zero balance
	ok, err = h.as(alice, 0).Unstake(core.NewAmount(1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []transfer{{alice, core.Amount{}}}, h.transfers)

	total, err := h.as(alice, 0).TotalStaked()
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestUnstakeBreaksTotalWhenOverdrawn(t *testing.T) {
	h := newInitializedHost(t)
	_, err := h.as(alice, 100).Stake()
	require.NoError(t, err)
	_, err = h.as(bob, 50).Stake()
	require.NoError(t, err)

	// total is decreased by the requested amount, not by the withdrawn balance
	_, err = h.as(bob, 0).Unstake(core.NewAmount(120))
	require.NoError(t, err)

	total, err := h.as(alice, 0).TotalStaked()
	require.NoError(t, err)
	assert.Equal(t, core.NewAmount(30), total)
}

func TestAirdrop(t *testing.T) {
	h := newInitializedHost(t)
	_, err := h.as(alice, 100).Stake()
	require.NoError(t, err)
	_, err = h.as(bob, 10).Stake()
	require.NoError(t, err)
	_, err = h.as(bob, 0).Unstake(core.NewAmount(10))
	require.NoError(t, err)
	snap := h.snapshot()

	assert.ErrorIs(t, h.as(alice, 0).Airdrop(core.NewAmount(5)), ErrNotOwner)
	assert.Empty(t, h.transfers)

	require.NoError(t, h.as(owner, 0).Airdrop(core.NewAmount(5)))
	assert.Equal(t, []transfer{
		{alice, core.NewAmount(5)},
		{bob, core.NewAmount(5)}, // zero balance entry included
	}, h.transfers)
	assert.Equal(t, snap, h.snapshot())
}

func TestAirdropWithoutStakers(t *testing.T) {
	h := newInitializedHost(t)
	require.NoError(t, h.as(owner, 0).Airdrop(core.NewAmount(5)))
	assert.Empty(t, h.transfers)
}

func TestViews(t *testing.T) {
	h := newInitializedHost(t)
	_, err := h.as(alice, 100).Stake()
	require.NoError(t, err)

	bal, err := h.as(alice, 0).TotalBalance()
	require.NoError(t, err)
	assert.Equal(t, core.NewAmount(100), bal)

	id, err := h.as(alice, 0).AccountID()
	require.NoError(t, err)
	assert.Equal(t, core.AccountID("staking.near"), id)
}

func TestTotalMatchesSumOfBalances(t *testing.T) {
	h := newInitializedHost(t)
	accounts := []core.AccountID{alice, bob, "carol.near"}

	steps := []struct {
		who     core.AccountID
		stake   uint64
		unstake uint64
	}{
		{alice, 100, 0},
		{bob, 30, 0},
		{alice, 0, 25},
		{"carol.near", 7, 0},
		{bob, 0, 30},
		{alice, 5, 0},
		{"carol.near", 0, 3},
	}
	for _, s := range steps {
		if s.stake > 0 {
			_, err := h.as(s.who, s.stake).Stake()
			require.NoError(t, err)
		}
		if s.unstake > 0 {
			_, err := h.as(s.who, 0).Unstake(core.NewAmount(s.unstake))
			require.NoError(t, err)
		}

		var sum core.Amount
		for _, a := range accounts {
			bal, err := h.as(a, 0).UserStaked()
			require.NoError(t, err)
			sum = sum.SaturatingAdd(bal)
		}
		total, err := h.as(alice, 0).TotalStaked()
		require.NoError(t, err)
		assert.Equal(t, sum, total)
	}
}
