// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package core

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAccountID(t *testing.T) {
	valid := []string{
		"alice.near",
		"ok",
		"staking-pool_01.testnet",
		"a1.b2.c3",
		strings.Repeat("a", MaxAccountIDLen),
	}
	for _, s := range valid {
		id, err := ParseAccountID(s)
		assert.NoError(t, err, s)
		assert.Equal(t, s, id.String())
	}

	invalid := []string{
		"",
		"a",
		"Alice.near",
		"alice..near",
		"-alice",
		"alice-",
		"alice.near.",
		"al ice",
		"a__b",
		strings.Repeat("a", MaxAccountIDLen+1),
	}
	for _, s := range invalid {
		_, err := ParseAccountID(s)
		assert.Error(t, err, s)
	}
}

func TestAccountIDJSON(t *testing.T) {
	var id AccountID
	assert.NoError(t, json.Unmarshal([]byte(`"bob.near"`), &id))
	assert.Equal(t, AccountID("bob.near"), id)
	assert.Error(t, json.Unmarshal([]byte(`"BOB"`), &id))
}
