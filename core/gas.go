// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package core

// Gas schedule of the execution host. Values are in gas units.
const (
	FunctionCallBaseGas uint64 = 2_319_861_500_000

	StorageReadBaseGas       uint64 = 56_356_845_750
	StorageReadKeyByteGas    uint64 = 30_952_533
	StorageReadValueByteGas  uint64 = 5_611_005
	StorageWriteBaseGas      uint64 = 64_196_736_000
	StorageWriteKeyByteGas   uint64 = 70_482_867
	StorageWriteValueByteGas uint64 = 31_018_539

	LogBaseGas uint64 = 3_543_313_050
	LogByteGas uint64 = 13_198_791

	TransferGas uint64 = 230_246_125_000

	// DefaultGas is the prepaid gas used when a call doesn't specify one (300 Tgas).
	DefaultGas uint64 = 300_000_000_000_000
	// MaxGas caps the prepaid gas of a single call.
	MaxGas uint64 = 300_000_000_000_000
)

// StorageReadGas returns the cost of reading value under key.
func StorageReadGas(keyLen, valueLen int) uint64 {
	return StorageReadBaseGas + uint64(keyLen)*StorageReadKeyByteGas + uint64(valueLen)*StorageReadValueByteGas
}

// StorageWriteGas returns the cost of writing value under key.
func StorageWriteGas(keyLen, valueLen int) uint64 {
	return StorageWriteBaseGas + uint64(keyLen)*StorageWriteKeyByteGas + uint64(valueLen)*StorageWriteValueByteGas
}

// LogGas returns the cost of emitting a log message.
func LogGas(msgLen int) uint64 {
	return LogBaseGas + uint64(msgLen)*LogByteGas
}
