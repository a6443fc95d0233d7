// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/genesis"
	"github.com/vechain/stakeledger/lvldb"
	"github.com/vechain/stakeledger/runtime"
)

// Scenario is a genesis followed by ordered calls, each with optional expectations.
type Scenario struct {
	Genesis genesis.Genesis `yaml:"genesis"`
	Steps   []Step          `yaml:"steps"`
}

// Step is a single call of a scenario.
type Step struct {
	Caller  core.AccountID `yaml:"caller"`
	Method  string         `yaml:"method"`
	Args    string         `yaml:"args"`
	Deposit core.Amount    `yaml:"deposit"`
	Gas     uint64         `yaml:"gas"`
	View    bool           `yaml:"view"`
	Expect  *Expect        `yaml:"expect"`
}

// Expect describes the expected outcome of a step. Empty fields are not checked.
type Expect struct {
	Status    string                         `yaml:"status"`
	Return    *string                        `yaml:"return"`
	Error     string                         `yaml:"error"`
	Logs      []string                       `yaml:"logs"`
	Transfers []ExpectTransfer               `yaml:"transfers"`
	Balances  map[core.AccountID]core.Amount `yaml:"balances"`
}

// ExpectTransfer is an expected transfer receipt.
type ExpectTransfer struct {
	Receiver core.AccountID `yaml:"receiver"`
	Amount   core.Amount    `yaml:"amount"`
	Failed   bool           `yaml:"failed"`
}

// Mismatch is an unmet expectation.
type Mismatch struct {
	Step   int
	Method string
	Reason string
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("step #%d (%s): %s", m.Step, m.Method, m.Reason)
}

func parseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(err, "decode scenario")
	}
	if err := sc.Genesis.Validate(); err != nil {
		return nil, errors.WithMessage(err, "genesis")
	}
	for i, step := range sc.Steps {
		if step.Method == "" {
			return nil, fmt.Errorf("steps[%d]: method is required", i)
		}
		if _, err := core.ParseAccountID(string(step.Caller)); err != nil {
			return nil, errors.Wrapf(err, "steps[%d]: caller", i)
		}
		if e := step.Expect; e != nil && e.Status != "" &&
			e.Status != runtime.StatusSuccess.String() && e.Status != runtime.StatusFailure.String() {
			return nil, fmt.Errorf("steps[%d]: unknown status %q", i, e.Status)
		}
	}
	return &sc, nil
}

func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	sc, err := parseScenario(data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return sc, nil
}

// Run executes the scenario against an in-memory store, printing each outcome to w.
func (sc *Scenario) Run(w io.Writer) ([]*Mismatch, error) {
	db, err := lvldb.NewMem()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	st, err := sc.Genesis.Build(db)
	if err != nil {
		return nil, err
	}
	rt := runtime.New(st)

	var mismatches []*Mismatch
	for i, step := range sc.Steps {
		call := &runtime.Call{
			Contract:    sc.Genesis.Contract,
			Predecessor: step.Caller,
			Method:      step.Method,
			Args:        []byte(step.Args),
			Deposit:     step.Deposit,
			Gas:         step.Gas,
		}
		var outcome *runtime.Outcome
		if step.View {
			outcome, err = rt.View(call)
		} else {
			outcome, err = rt.Execute(call)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "step #%d (%s)", i, step.Method)
		}

		fmt.Fprintf(w, "--- step #%d: %s.%s(%s)\n", i, step.Caller, step.Method, step.Args)
		printOutcome(w, outcome)

		if step.Expect == nil {
			continue
		}
		reasons, err := step.Expect.check(rt, outcome)
		if err != nil {
			return nil, err
		}
		for _, reason := range reasons {
			mismatches = append(mismatches, &Mismatch{Step: i, Method: step.Method, Reason: reason})
		}
	}
	return mismatches, nil
}

func (e *Expect) check(rt *runtime.Runtime, o *runtime.Outcome) ([]string, error) {
	var reasons []string
	failf := func(format string, args ...any) {
		reasons = append(reasons, fmt.Sprintf(format, args...))
	}

	if e.Status != "" && e.Status != o.Status.String() {
		failf("status: want %s, got %s (%v)", e.Status, o.Status, o.Err)
	}
	if e.Return != nil && *e.Return != string(o.Return) {
		failf("return: want %s, got %s", *e.Return, o.Return)
	}
	if e.Error != "" && (o.Err == nil || !strings.Contains(o.Err.Error(), e.Error)) {
		failf("error: want %q, got %v", e.Error, o.Err)
	}
	if e.Logs != nil && strings.Join(e.Logs, "\n") != strings.Join(o.Logs, "\n") {
		failf("logs: want %q, got %q", e.Logs, o.Logs)
	}
	if e.Transfers != nil {
		if len(e.Transfers) != len(o.Transfers) {
			failf("transfers: want %d, got %d", len(e.Transfers), len(o.Transfers))
		} else {
			for i, want := range e.Transfers {
				got := o.Transfers[i]
				if want.Receiver != got.Receiver || want.Amount != got.Amount || want.Failed != got.Failed {
					failf("transfers[%d]: want %s -> %s (failed=%v), got %s -> %s (failed=%v)",
						i, want.Amount, want.Receiver, want.Failed, got.Amount, got.Receiver, got.Failed)
				}
			}
		}
	}
	for account, want := range e.Balances {
		got, err := rt.State().GetBalance(account)
		if err != nil {
			return nil, err
		}
		if got != want {
			failf("balance of %s: want %s, got %s", account, want, got)
		}
	}
	return reasons, nil
}
