// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/vechain/stakeledger/builtin/gascharger"
	"github.com/vechain/stakeledger/builtin/reverts"
	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/state"
)

var logger = log.New("pkg", "xenv")

// ErrOutOfGas is returned when a call exhausts its prepaid gas.
var ErrOutOfGas = errors.New("exceeded the prepaid gas")

// CallContext call context.
type CallContext struct {
	Contract    core.AccountID
	Predecessor core.AccountID
	Deposit     core.Amount
	Gas         uint64
}

// Promise is a native transfer scheduled by the contract.
type Promise struct {
	Receiver core.AccountID
	Amount   core.Amount
}

type vmError struct {
	cause error
}

// Environment an env to execute native method.
type Environment struct {
	state    *state.State
	ctx      *CallContext
	input    []byte
	gasUsed  uint64
	charger  *gascharger.Charger
	promises []*Promise
	logs     []string
}

// New create a new env.
func New(state *state.State, ctx *CallContext, input []byte) *Environment {
	env := &Environment{
		state: state,
		ctx:   ctx,
		input: input,
	}
	env.charger = gascharger.New(env)
	return env
}

func (env *Environment) State() *state.State                  { return env.state }
func (env *Environment) CallContext() *CallContext            { return env.ctx }
func (env *Environment) Charger() *gascharger.Charger         { return env.charger }
func (env *Environment) GasUsed() uint64                      { return env.gasUsed }
func (env *Environment) Promises() []*Promise                 { return env.promises }
func (env *Environment) Logs() []string                       { return env.logs }
func (env *Environment) PredecessorAccountID() core.AccountID { return env.ctx.Predecessor }
func (env *Environment) CurrentAccountID() core.AccountID     { return env.ctx.Contract }
func (env *Environment) AttachedDeposit() core.Amount         { return env.ctx.Deposit }

// UseGas consumes gas, the call is aborted once the prepaid gas is exhausted.
func (env *Environment) UseGas(gas uint64) {
	if gas > env.ctx.Gas-env.gasUsed {
		env.gasUsed = env.ctx.Gas
		panic(&vmError{ErrOutOfGas})
	}
	env.gasUsed += gas
}

// ParseArgs decodes the JSON input into val. Empty input is treated as an empty object.
func (env *Environment) ParseArgs(val any) {
	input := bytes.TrimSpace(env.input)
	if len(input) == 0 {
		input = []byte("{}")
	}
	if err := json.Unmarshal(input, val); err != nil {
		panic(&vmError{reverts.NewRequireError("failed to deserialize input from JSON: " + err.Error())})
	}
}

func (env *Environment) Require(cond bool, err error) {
	if !cond {
		panic(&vmError{err})
	}
}

func (env *Environment) Stop(vmerr error) {
	panic(&vmError{vmerr})
}

// AccountBalance returns the native balance of the contract.
func (env *Environment) AccountBalance() (core.Amount, error) {
	return env.state.GetBalance(env.ctx.Contract)
}

// StorageRead reads the contract storage.
func (env *Environment) StorageRead(key []byte) ([]byte, error) {
	raw, err := env.state.GetStorage(env.ctx.Contract, key)
	if err != nil {
		return nil, err
	}
	env.charger.ChargeStorageRead(len(key), len(raw))
	return raw, nil
}

// StorageWrite writes the contract storage.
func (env *Environment) StorageWrite(key, value []byte) error {
	env.charger.ChargeStorageWrite(len(key), len(value))
	env.state.SetStorage(env.ctx.Contract, key, value)
	return nil
}

// Transfer queues a promise, settled after the call succeeds.
func (env *Environment) Transfer(receiver core.AccountID, amount core.Amount) {
	env.charger.ChargeTransfer()
	env.promises = append(env.promises, &Promise{Receiver: receiver, Amount: amount})
}

// Log records a log message of the contract.
func (env *Environment) Log(msg string) {
	env.charger.ChargeLog(len(msg))
	env.logs = append(env.logs, msg)
	logger.Debug("contract log", "contract", env.ctx.Contract, "msg", msg)
}

// Call wraps proc into a callable, which recovers aborts of env into error
// and encodes the output as JSON. A nil output results in nil data.
func (env *Environment) Call(proc func(env *Environment) (any, error)) func() ([]byte, error) {
	return func() (data []byte, err error) {
		defer func() {
			if e := recover(); e != nil {
				if rec, ok := e.(*vmError); ok {
					err = rec.cause
				} else {
					panic(e)
				}
			}
		}()
		output, err := proc(env)
		if err != nil {
			return nil, err
		}
		if output == nil {
			return nil, nil
		}
		data, err = json.Marshal(output)
		if err != nil {
			return nil, errors.WithMessage(err, "encode native output")
		}
		return data, nil
	}
}
