// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/genesis"
	"github.com/vechain/stakeledger/runtime"
	"github.com/vechain/stakeledger/state"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Version:   fullVersion(),
		Name:      "stakeledger",
		Usage:     "Staking ledger contract host",
		Copyright: "2026 VeChain Foundation <https://vechain.org/>",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			dataDirFlag,
			verbosityFlag,
			contractFlag,
			metricsAddrFlag,
		},
		Before: func(ctx *cli.Context) error {
			initLogger(ctx)
			return nil
		},
		Commands: []cli.Command{
			{
				Name:   "init",
				Usage:  "write the genesis into the data dir",
				Flags:  []cli.Flag{genesisFlag},
				Action: initAction,
			},
			{
				Name:      "call",
				Usage:     "execute a contract method and commit its effects",
				ArgsUsage: "<method> [json-args]",
				Flags:     []cli.Flag{callerFlag, depositFlag, gasFlag},
				Action:    callAction,
			},
			{
				Name:      "view",
				Usage:     "execute a view method",
				ArgsUsage: "<method> [json-args]",
				Flags:     []cli.Flag{callerFlag},
				Action:    viewAction,
			},
			{
				Name:      "balance",
				Usage:     "print the native balance of an account",
				ArgsUsage: "<account>",
				Action:    balanceAction,
			},
			{
				Name:   "accounts",
				Usage:  "list funded accounts",
				Action: accountsAction,
			},
			{
				Name:      "run",
				Usage:     "run a scenario against an in-memory ledger",
				ArgsUsage: "<scenario.yaml>",
				Action:    runAction,
			},
		},
	}
}

func initAction(ctx *cli.Context) error {
	gen := genesis.NewDevnet()
	if path := ctx.String(genesisFlag.Name); path != "" {
		var err error
		if gen, err = genesis.Load(path); err != nil {
			return err
		}
	}

	db, err := openMainDB(ctx)
	if err != nil {
		return err
	}
	defer func() { log.Info("closing main database..."); db.Close() }()

	if _, err := gen.Build(db); err != nil {
		return err
	}
	log.Info("ledger initialized", "contract", gen.Contract, "accounts", len(gen.Accounts), "data-dir", ctx.GlobalString(dataDirFlag.Name))
	return nil
}

func callAction(ctx *cli.Context) error {
	return execAction(ctx, false)
}

func viewAction(ctx *cli.Context) error {
	return execAction(ctx, true)
}

func execAction(ctx *cli.Context, view bool) error {
	if ctx.NArg() < 1 {
		return errors.New("method is required")
	}

	stopMetrics, err := startMetricsServer(ctx)
	if err != nil {
		return err
	}
	defer stopMetrics()

	db, err := openMainDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	contract, err := selectContract(ctx, db)
	if err != nil {
		return err
	}
	caller, err := core.ParseAccountID(ctx.String(callerFlag.Name))
	if err != nil {
		return errors.WithMessage(err, "caller")
	}

	call := &runtime.Call{
		Contract:    contract,
		Predecessor: caller,
		Method:      ctx.Args().Get(0),
		Args:        []byte(ctx.Args().Get(1)),
	}
	rt := runtime.New(state.New(db))

	var outcome *runtime.Outcome
	if view {
		outcome, err = rt.View(call)
	} else {
		if call.Deposit, err = core.ParseAmount(ctx.String(depositFlag.Name)); err != nil {
			return err
		}
		call.Gas = ctx.Uint64(gasFlag.Name)
		outcome, err = rt.Execute(call)
	}
	if err != nil {
		return err
	}
	printOutcome(ctx.App.Writer, outcome)
	if outcome.Status != runtime.StatusSuccess {
		return cli.NewExitError("", 1)
	}
	return nil
}

func balanceAction(ctx *cli.Context) error {
	account, err := core.ParseAccountID(ctx.Args().First())
	if err != nil {
		return err
	}
	db, err := openMainDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	bal, err := state.New(db).GetBalance(account)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, bal)
	return nil
}

func accountsAction(ctx *cli.Context) error {
	db, err := openMainDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.Snapshot()
	if err != nil {
		return err
	}
	defer snap.Release()

	return state.IterateBalances(snap, func(account core.AccountID, balance core.Amount) bool {
		fmt.Fprintf(ctx.App.Writer, "%-32s %s\n", account, balance)
		return true
	})
}

func runAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errors.New("scenario file is required")
	}
	stopMetrics, err := startMetricsServer(ctx)
	if err != nil {
		return err
	}
	defer stopMetrics()

	sc, err := loadScenario(ctx.Args().First())
	if err != nil {
		return err
	}
	mismatches, err := sc.Run(ctx.App.Writer)
	if err != nil {
		return err
	}
	if len(mismatches) > 0 {
		for _, m := range mismatches {
			fmt.Fprintln(ctx.App.ErrWriter, m)
		}
		return cli.NewExitError(fmt.Sprintf("%d expectation(s) failed", len(mismatches)), 1)
	}
	fmt.Fprintf(ctx.App.Writer, "scenario passed, %d step(s)\n", len(sc.Steps))
	return nil
}
