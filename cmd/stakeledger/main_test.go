// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "gopkg.in/urfave/cli.v1"
)

type testCLI struct {
	t       *testing.T
	dataDir string
	exit    int
}

func newTestCLI(t *testing.T) *testCLI {
	tc := &testCLI{t: t, dataDir: t.TempDir()}

	exiter := cli.OsExiter
	cli.OsExiter = func(code int) { tc.exit = code }
	t.Cleanup(func() { cli.OsExiter = exiter })
	return tc
}

// run runs the app with global flags prepended, and returns stdout.
func (tc *testCLI) run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	tc.exit = 0
	err := app.Run(append([]string{"stakeledger", "--data-dir", tc.dataDir, "--verbosity", "0"}, args...))
	return stdout.String(), err
}

func (tc *testCLI) mustRun(args ...string) string {
	out, err := tc.run(args...)
	require.NoError(tc.t, err, args)
	require.Zero(tc.t, tc.exit, args)
	return out
}

const cliGenesis = `
contract: staking.test
accounts:
  - id: owner.test
    balance: 1000
  - id: alice.test
    balance: 1000
`

func TestCLI(t *testing.T) {
	tc := newTestCLI(t)

	// nothing can run before init
	_, err := tc.run("call", "--caller", "owner.test", "new")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cliGenesis), 0o600))
	tc.mustRun("init", "--genesis", path)

	// init only once
	_, err = tc.run("init", "--genesis", path)
	assert.Error(t, err)

	out := tc.mustRun("call", "--caller", "owner.test", "new")
	assert.Contains(t, out, "status:    success")

	out = tc.mustRun("call", "--caller", "alice.test", "--deposit", "100", "stake")
	assert.Contains(t, out, "return:    100")
	assert.Contains(t, out, "log:       alice.test is staking 100")

	out = tc.mustRun("view", "--caller", "alice.test", "get_user_staked")
	assert.Contains(t, out, "return:    100")

	assert.Equal(t, "900\n", tc.mustRun("balance", "alice.test"))
	assert.Equal(t, "100\n", tc.mustRun("balance", "staking.test"))

	out = tc.mustRun("accounts")
	assert.Contains(t, out, "alice.test")
	assert.Contains(t, out, "owner.test")
	assert.Contains(t, out, "staking.test")

	out = tc.mustRun("call", "--caller", "alice.test", "unstake", `{"amount":"40"}`)
	assert.Contains(t, out, "transfer:  40 -> alice.test (ok)")
	assert.Equal(t, "940\n", tc.mustRun("balance", "alice.test"))

	// the contract can be given explicitly
	out = tc.mustRun("--contract", "staking.test", "view", "--caller", "owner.test", "get_total_staked")
	assert.Contains(t, out, "return:    60")
}

func TestCLIFailures(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun("init")
	tc.mustRun("call", "--caller", "owner.test", "new")

	// a failed call exits non-zero and leaves no effect
	out, err := tc.run("call", "--caller", "alice.test", "--deposit", "5", "unstake", `{"amount":"1"}`)
	assert.Error(t, err)
	assert.Equal(t, 1, tc.exit)
	assert.Contains(t, out, "status:    failure")
	assert.Contains(t, out, "doesn't accept deposit")
	assert.Equal(t, "1000000000000000000000000000\n", tc.mustRun("balance", "alice.test"))

	// view rejects mutating methods
	_, err = tc.run("view", "--caller", "alice.test", "stake")
	assert.Error(t, err)
	assert.Equal(t, 1, tc.exit)

	tests := []struct {
		name string
		args []string
	}{
		{"no method", []string{"call", "--caller", "alice.test"}},
		{"bad caller", []string{"call", "--caller", "Alice", "new"}},
		{"bad deposit", []string{"call", "--caller", "alice.test", "--deposit", "-1", "stake"}},
		{"unknown method", []string{"call", "--caller", "alice.test", "withdraw"}},
		{"bad account", []string{"balance", "Alice"}},
		{"bad contract", []string{"--contract", "X", "view", "--caller", "alice.test", "get_total_staked"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tc.run(tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestCLIRun(t *testing.T) {
	tc := newTestCLI(t)
	out := tc.mustRun("run", "testdata/unstake.yaml")
	assert.Contains(t, out, "scenario passed, 6 step(s)")

	_, err := tc.run("run")
	assert.Error(t, err)
}
