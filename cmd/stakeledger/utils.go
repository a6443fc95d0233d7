// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/stakeledger/cmd/stakeledger/httpserver"
	"github.com/vechain/stakeledger/core"
	"github.com/vechain/stakeledger/genesis"
	"github.com/vechain/stakeledger/kv"
	"github.com/vechain/stakeledger/lvldb"
	"github.com/vechain/stakeledger/metrics"
	rt "github.com/vechain/stakeledger/runtime"
)

func initLogger(ctx *cli.Context) {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	handler := log.NewGlogHandler(log.NewTerminalHandler(os.Stderr, useColor))
	handler.Verbosity(log.FromLegacyLevel(ctx.GlobalInt(verbosityFlag.Name)))
	log.SetDefault(log.NewLogger(handler))
}

func openMainDB(ctx *cli.Context) (*lvldb.LevelDB, error) {
	dataDir := ctx.GlobalString(dataDirFlag.Name)
	if dataDir == "" {
		return nil, errors.New("unable to infer default data dir, use -data-dir to specify")
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "create data dir [%v]", dataDir)
	}
	path := filepath.Join(dataDir, "main.db")
	db, err := lvldb.New(path, lvldb.Options{
		CacheSize:              128,
		OpenFilesCacheCapacity: 64,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open main database [%v]", path)
	}
	return db, nil
}

func selectContract(ctx *cli.Context, db kv.Getter) (core.AccountID, error) {
	if s := ctx.GlobalString(contractFlag.Name); s != "" {
		return core.ParseAccountID(s)
	}
	contract, err := genesis.LoadContract(db)
	if err != nil {
		return "", errors.WithMessage(err, "ledger not initialized, run init first")
	}
	return contract, nil
}

func startMetricsServer(ctx *cli.Context) (func(), error) {
	addr := ctx.GlobalString(metricsAddrFlag.Name)
	if addr == "" {
		return func() {}, nil
	}
	metrics.InitializePrometheusMetrics()

	url, stop, err := httpserver.StartMetricsServer(addr)
	if err != nil {
		return nil, err
	}
	log.Info("metrics server started", "url", url)
	return func() { log.Info("stopping metrics server..."); stop() }, nil
}

func printOutcome(w io.Writer, o *rt.Outcome) {
	fmt.Fprintf(w, "status:    %s\n", o.Status)
	if o.Err != nil {
		fmt.Fprintf(w, "error:     %v\n", o.Err)
	}
	if o.Return != nil {
		fmt.Fprintf(w, "return:    %s\n", o.Return)
	}
	for _, l := range o.Logs {
		fmt.Fprintf(w, "log:       %s\n", l)
	}
	for _, t := range o.Transfers {
		result := "ok"
		if t.Failed {
			result = "failed"
		}
		fmt.Fprintf(w, "transfer:  %s -> %s (%s)\n", t.Amount, t.Receiver, result)
	}
	fmt.Fprintf(w, "gas burnt: %d\n", o.GasBurnt)
	if o.GasBreakdown != "" {
		fmt.Fprintf(w, "%s\n", o.GasBreakdown)
	}
}

// copy from go-ethereum
func defaultDataDir() string {
	// Try to place the data folder in the user's home dir
	if home := homeDir(); home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, "Library", "Application Support", "org.vechain.stakeledger")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "org.vechain.stakeledger")
		} else {
			return filepath.Join(home, ".org.vechain.stakeledger")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
