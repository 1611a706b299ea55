// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// TxVersion is the current latest supported transaction version.
const TxVersion = 2

// MaxTxInSequenceNum is the maximum sequence number a transaction input's
// Sequence field can carry. A sequence of this value disables both the
// relative-locktime (BIP68) and CHECKSEQUENCEVERIFY (BIP112) semantics for
// that input, and (when every input carries it) the absolute locktime too.
const MaxTxInSequenceNum uint32 = 0xffffffff

// Constants used to interpret the Sequence field per BIP68/BIP112.
const (
	// SequenceLockTimeDisabled, when set in an input's Sequence, disables
	// the relative lock-time / CHECKSEQUENCEVERIFY interpretation of that
	// field entirely.
	SequenceLockTimeDisabled = 1 << 31

	// SequenceLockTimeIsSeconds, when set, means the low bits of Sequence
	// (masked by SequenceLockTimeMask) count 512-second intervals rather
	// than blocks.
	SequenceLockTimeIsSeconds = 1 << 22

	// SequenceLockTimeMask extracts the relative lock-time bits from a
	// Sequence value.
	SequenceLockTimeMask = 0x0000ffff

	// SequenceLockTimeGranularity is the number of bits of the Sequence
	// field that are used to normalize the actual elapsed time into a
	// seconds-based relative lock-time.
	SequenceLockTimeGranularity = 9
)

// Witness marker/flag bytes that introduce the segwit serialization form,
// inserted immediately after the 4-byte version field in place of the
// legacy input count.
const (
	WitnessMarkerByte byte = 0x00
	WitnessFlagByte   byte = 0x01
)

// Bounds used when deserializing, so a corrupt wire encoding produces a
// typed error rather than an unbounded allocation.
const (
	// maxTxInOutPerTx is a generous upper bound on the input count and on
	// the output count accepted when deserializing a transaction.
	maxTxInOutPerTx = 1_000_000

	// MaxWitnessItemsPerInput is an upper bound on the number of stack
	// items a single input's witness can carry; consensus additionally
	// enforces a tighter 100-item cap for segwit v0 (see txscript).
	MaxWitnessItemsPerInput = 100_000

	// MaxWitnessItemSize bounds a single witness stack item read from the
	// wire. Consensus additionally enforces the 520-byte stack element
	// cap inside the script interpreter.
	MaxWitnessItemSize = 11_000_000
)
