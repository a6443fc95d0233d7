// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gascharger

import (
	"fmt"

	"github.com/vechain/stakeledger/core"
)

// GasUser is the sink of charged gas, it aborts the call once the prepaid gas is exhausted.
type GasUser interface {
	UseGas(gas uint64)
}

type Charger struct {
	user GasUser

	storageReadOps  uint64
	storageReadGas  uint64
	storageWriteOps uint64
	storageWriteGas uint64
	logOps          uint64
	logGas          uint64
	transferOps     uint64
	customGas       uint64
	totalGas        uint64
}

func New(user GasUser) *Charger {
	return &Charger{user: user}
}

// Charge charges a custom amount of gas.
func (c *Charger) Charge(gas uint64) {
	c.customGas += gas
	c.use(gas)
}

func (c *Charger) ChargeStorageRead(keyLen, valueLen int) {
	gas := core.StorageReadGas(keyLen, valueLen)
	c.storageReadOps++
	c.storageReadGas += gas
	c.use(gas)
}

func (c *Charger) ChargeStorageWrite(keyLen, valueLen int) {
	gas := core.StorageWriteGas(keyLen, valueLen)
	c.storageWriteOps++
	c.storageWriteGas += gas
	c.use(gas)
}

func (c *Charger) ChargeLog(msgLen int) {
	gas := core.LogGas(msgLen)
	c.logOps++
	c.logGas += gas
	c.use(gas)
}

func (c *Charger) ChargeTransfer() {
	c.transferOps++
	c.use(core.TransferGas)
}

func (c *Charger) use(gas uint64) {
	c.totalGas += gas
	if c.user != nil {
		c.user.UseGas(gas)
	}
}

func (c *Charger) Breakdown() string {
	return fmt.Sprintf(
		"READ: %d ops (%d gas) | WRITE: %d ops (%d gas) | LOG: %d ops (%d gas) | TRANSFER: %d ops (%d gas) | CUSTOM: %d gas | TOTAL: %d gas",
		c.storageReadOps,
		c.storageReadGas,
		c.storageWriteOps,
		c.storageWriteGas,
		c.logOps,
		c.logGas,
		c.transferOps,
		c.transferOps*core.TransferGas,
		c.customGas,
		c.totalGas,
	)
}

func (c *Charger) TotalGas() uint64 {
	return c.totalGas
}
