// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for the ledger database",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "log verbosity (0-5)",
	}
	contractFlag = cli.StringFlag{
		Name:  "contract",
		Usage: "contract account, defaults to the one recorded by init",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Usage: "serve prometheus metrics at the address, disabled if empty",
	}
	genesisFlag = cli.StringFlag{
		Name:  "genesis",
		Usage: "path to a genesis yaml file, the dev genesis is used if omitted",
	}
	callerFlag = cli.StringFlag{
		Name:  "caller",
		Usage: "predecessor account of the call",
	}
	depositFlag = cli.StringFlag{
		Name:  "deposit",
		Value: "0",
		Usage: "attached deposit",
	}
	gasFlag = cli.Uint64Flag{
		Name:  "gas",
		Usage: "prepaid gas, 300 Tgas if 0",
	}
)
