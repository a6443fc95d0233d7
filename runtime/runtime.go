// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/vechain/stakeledger/builtin"
	"github.com/vechain/stakeledger/builtin/reverts"
	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/state"
	"github.com/vechain/stakeledger/xenv"
)

var logger = log.New("pkg", "runtime")

var (
	errInsufficientBalance = reverts.NewRequireError("insufficient balance to attach deposit")
	errMethodNotView       = reverts.NewRequireError("method is not a view method")
)

// Call is an invocation of a contract method.
type Call struct {
	Contract    core.AccountID
	Predecessor core.AccountID
	Method      string
	Args        []byte // JSON encoded
	Deposit     core.Amount
	Gas         uint64 // prepaid gas, core.DefaultGas if 0
}

// Status of an executed call.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

// TransferReceipt is the settlement result of a promise.
type TransferReceipt struct {
	Receiver core.AccountID
	Amount   core.Amount
	Failed   bool
}

// Outcome is the result of an executed call.
type Outcome struct {
	Status       Status
	Return       []byte // JSON encoded, nil if the method returns nothing
	Err          error  // reason of failure
	Logs         []string
	GasBurnt     uint64
	GasBreakdown string
	Transfers    []*TransferReceipt
}

// Runtime executes calls against the world state, one at a time.
// Each successful call is committed on its own; a failed call leaves no effect.
type Runtime struct {
	mu    sync.Mutex
	state *state.State
}

// New create a Runtime object.
func New(state *state.State) *Runtime {
	return &Runtime{state: state}
}

func (rt *Runtime) State() *state.State { return rt.state }

func (rt *Runtime) prepare(call *Call) (*builtin.NativeMethod, error) {
	if call.Gas == 0 {
		call.Gas = core.DefaultGas
	}
	if call.Gas > core.MaxGas {
		return nil, errors.Errorf("prepaid gas %d exceeds the limit %d", call.Gas, core.MaxGas)
	}
	if call.Contract.IsZero() || call.Predecessor.IsZero() {
		return nil, errors.New("contract and predecessor are required")
	}
	method, ok := builtin.Staking.FindMethod(call.Method)
	if !ok {
		return nil, errors.Errorf("method %q not found", call.Method)
	}
	return method, nil
}

// Execute executes the call and commits its effects if it succeeds.
// The returned error is not nil only for invalid calls or state failures;
// contract failures are reported by the outcome.
func (rt *Runtime) Execute(call *Call) (*Outcome, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	method, err := rt.prepare(call)
	if err != nil {
		return nil, err
	}

	outcome, err := rt.execute(method, call)
	if err != nil {
		return nil, err
	}
	if outcome.Status == StatusSuccess {
		if err := rt.state.Stage().Commit(); err != nil {
			// nothing of the call may leak into later commits
			rt.state.Reset()
			return nil, errors.Wrap(err, "commit")
		}
		metricCommits().Add(1)
	}
	recordOutcome(call.Method, outcome)
	return outcome, nil
}

// View executes a view method and discards any effect.
func (rt *Runtime) View(call *Call) (*Outcome, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	method, err := rt.prepare(call)
	if err != nil {
		return nil, err
	}
	if !method.View {
		return &Outcome{Status: StatusFailure, Err: errMethodNotView}, nil
	}

	checkpoint := rt.state.NewCheckpoint()
	defer rt.state.RevertTo(checkpoint)

	return rt.execute(method, call)
}

func (rt *Runtime) execute(method *builtin.NativeMethod, call *Call) (*Outcome, error) {
	checkpoint := rt.state.NewCheckpoint()

	fail := func(err error, env *xenv.Environment) *Outcome {
		rt.state.RevertTo(checkpoint)
		o := &Outcome{Status: StatusFailure, Err: err}
		if env != nil {
			o.GasBurnt = env.GasUsed()
			o.GasBreakdown = env.Charger().Breakdown()
		}
		logger.Debug("call failed", "method", call.Method, "predecessor", call.Predecessor, "err", err)
		return o
	}

	if !call.Deposit.IsZero() {
		ok, err := rt.state.SubBalance(call.Predecessor, call.Deposit)
		if err != nil {
			rt.state.RevertTo(checkpoint)
			return nil, err
		}
		if !ok {
			return fail(errInsufficientBalance, nil), nil
		}
		if err := rt.state.AddBalance(call.Contract, call.Deposit); err != nil {
			rt.state.RevertTo(checkpoint)
			return nil, err
		}
	}

	env := xenv.New(rt.state, &xenv.CallContext{
		Contract:    call.Contract,
		Predecessor: call.Predecessor,
		Deposit:     call.Deposit,
		Gas:         call.Gas,
	}, call.Args)

	data, err := method.Call(env)
	if err != nil {
		var stateErr *state.Error
		if errors.As(err, &stateErr) {
			rt.state.RevertTo(checkpoint)
			return nil, err
		}
		return fail(err, env), nil
	}

	// promises are settled after the call returns, the contract never observes their results
	receipts := make([]*TransferReceipt, 0, len(env.Promises()))
	for _, p := range env.Promises() {
		receipt, err := rt.settle(call.Contract, p)
		if err != nil {
			rt.state.RevertTo(checkpoint)
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return &Outcome{
		Status:       StatusSuccess,
		Return:       data,
		Logs:         env.Logs(),
		GasBurnt:     env.GasUsed(),
		GasBreakdown: env.Charger().Breakdown(),
		Transfers:    receipts,
	}, nil
}

func (rt *Runtime) settle(contract core.AccountID, p *xenv.Promise) (*TransferReceipt, error) {
	receipt := &TransferReceipt{Receiver: p.Receiver, Amount: p.Amount}

	ok, err := rt.state.SubBalance(contract, p.Amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		receipt.Failed = true
		logger.Warn("transfer failed, insufficient contract balance", "contract", contract, "receiver", p.Receiver, "amount", p.Amount)
		return receipt, nil
	}
	if err := rt.state.AddBalance(p.Receiver, p.Amount); err != nil {
		return nil, err
	}
	return receipt, nil
}
