// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state manages the world state: native balances and raw contract storage of accounts.
// All changes are journaled and can be reverted to a checkpoint, until staged and committed to the kv store.
package state
