// Copyright (c) 2021-2022 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"

	"github.com/pkt-cash/pktscript/btcec"
	"github.com/pkt-cash/pktscript/btcutil/er"
	"github.com/pkt-cash/pktscript/chainhash"
	"github.com/pkt-cash/pktscript/txscript/txscripterr"
)

const (
	// taprootLeafMask isolates the leaf version from the low bit (parity)
	// carried in the first byte of a taproot control block.
	taprootLeafMask = 0xfe

	// taprootBaseLeafVersion is the only tapscript leaf version defined by
	// BIP342; a control block naming any other version is left for
	// future soft-forks and validates trivially (anything goes).
	taprootBaseLeafVersion = 0xc0

	// taprootControlBaseSize is the fixed-size prefix of a control block:
	// one byte of (leaf version | parity) followed by the 32-byte
	// internal public key.
	taprootControlBaseSize = 1 + 32

	// taprootControlNodeSize is the size of each Merkle branch hash
	// appended to the control block.
	taprootControlNodeSize = 32

	// taprootControlMaxNodeCount bounds the Merkle path length; the
	// control block itself is therefore capped at 4129 bytes.
	taprootControlMaxNodeCount = 128

	taprootControlMaxSize = taprootControlBaseSize + taprootControlNodeSize*taprootControlMaxNodeCount

	// taprootAnnexTag marks the final witness stack element as an annex
	// (BIP341) rather than the script/control-block pair or initial stack.
	taprootAnnexTag = 0x50
)

// controlBlock is the parsed form of the final witness stack element of a
// taproot script-path spend.
type controlBlock struct {
	leafVersion  byte
	parity       bool
	internalKey  []byte
	merkleBranch [][]byte
}

// parseControlBlock decodes the raw control block bytes taken from the
// witness of a taproot script-path spend.
func parseControlBlock(raw []byte) (*controlBlock, er.R) {
	if len(raw) < taprootControlBaseSize {
		str := "control block too short to contain a leaf version and internal key"
		return nil, txscripterr.ScriptError(txscripterr.ErrTaprootControlBlockInvalid, str)
	}
	if len(raw) > taprootControlMaxSize {
		str := "control block larger than the maximum allowed Merkle path"
		return nil, txscripterr.ScriptError(txscripterr.ErrTaprootControlBlockInvalid, str)
	}

	branchBytes := raw[taprootControlBaseSize:]
	if len(branchBytes)%taprootControlNodeSize != 0 {
		str := "control block Merkle path is not a whole number of 32-byte nodes"
		return nil, txscripterr.ScriptError(txscripterr.ErrTaprootControlBlockInvalid, str)
	}

	cb := &controlBlock{
		leafVersion: raw[0] & taprootLeafMask,
		parity:      raw[0]&0x01 == 0x01,
		internalKey: raw[1:33],
	}
	for i := 0; i < len(branchBytes); i += taprootControlNodeSize {
		cb.merkleBranch = append(cb.merkleBranch, branchBytes[i:i+taprootControlNodeSize])
	}
	return cb, nil
}

// tapLeafHash computes the BIP341 tagged hash identifying a tapscript leaf:
// TaggedHash("TapLeaf", leafVersion || compactSize(len(script)) || script).
func tapLeafHash(leafVersion byte, script []byte) chainhash.Hash {
	var buf bytes.Buffer
	buf.WriteByte(leafVersion)
	writeCompactSize(&buf, uint64(len(script)))
	buf.Write(script)
	return chainhash.TaggedHash(chainhash.TagTapLeaf, buf.Bytes())
}

// tapBranchHash combines two Merkle tree nodes, sorting them lexically as
// required by BIP341 so the same pair hashes identically regardless of the
// order they're supplied in.
func tapBranchHash(left, right []byte) chainhash.Hash {
	if bytes.Compare(left, right) > 0 {
		left, right = right, left
	}
	return chainhash.TaggedHash(chainhash.TagTapBranch, left, right)
}

// computeTapscriptMerkleRoot walks the control block's Merkle path starting
// from the executed leaf and returns the resulting root.
func computeTapscriptMerkleRoot(cb *controlBlock, leafHash chainhash.Hash) chainhash.Hash {
	node := leafHash
	for _, branch := range cb.merkleBranch {
		node = tapBranchHash(node[:], branch)
	}
	return node
}

// tapTweakHash computes the BIP341 taproot tweak:
// TaggedHash("TapTweak", internalKey || merkleRoot).
//
// merkleRoot may be nil/empty for a key-path-only output (no script tree).
func tapTweakHash(internalKey []byte, merkleRoot []byte) chainhash.Hash {
	if len(merkleRoot) == 0 {
		return chainhash.TaggedHash(chainhash.TagTapTweak, internalKey)
	}
	return chainhash.TaggedHash(chainhash.TagTapTweak, internalKey, merkleRoot)
}

// verifyTaprootLeafCommitment checks that the control block's internal key,
// tweaked by the Merkle root recomputed from cb and leafHash, reproduces the
// 32-byte witness program taken from the previous output's scriptPubKey.
func verifyTaprootLeafCommitment(cb *controlBlock, leafHash chainhash.Hash, program []byte) er.R {
	if len(cb.merkleBranch) > taprootControlMaxNodeCount {
		str := "taproot Merkle path exceeds the maximum allowed depth"
		return txscripterr.ScriptError(txscripterr.ErrTaprootControlBlockInvalid, str)
	}

	merkleRoot := computeTapscriptMerkleRoot(cb, leafHash)
	tweak := tapTweakHash(cb.internalKey, merkleRoot[:])

	internalPub, err := btcec.ParseSchnorrPubKey(cb.internalKey)
	if err != nil {
		return err
	}
	outputKey, parity, err := btcec.TweakPubKey(internalPub, [32]byte(tweak))
	if err != nil {
		return err
	}
	if parity != cb.parity {
		str := "taproot output key parity does not match control block"
		return txscripterr.ScriptError(txscripterr.ErrTaprootControlBlockInvalid, str)
	}

	outputBytes := btcec.SerializeSchnorrPubKey(outputKey)
	if !bytes.Equal(outputBytes, program) {
		str := "taproot control block does not commit to the output key"
		return txscripterr.ScriptError(txscripterr.ErrTaprootControlBlockInvalid, str)
	}
	return nil
}

// writeCompactSize writes n using Bitcoin's compact-size encoding. Control
// block tapleaf hashing needs exactly the same varint rules as the wire
// format, so this mirrors wire.WriteVarInt without importing the wire
// package's io-oriented API for a single uint64.
func writeCompactSize(buf *bytes.Buffer, n uint64) {
	switch {
	case n < 0xfd:
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(0xfd)
		buf.WriteByte(byte(n))
		buf.WriteByte(byte(n >> 8))
	case n <= 0xffffffff:
		buf.WriteByte(0xfe)
		buf.WriteByte(byte(n))
		buf.WriteByte(byte(n >> 8))
		buf.WriteByte(byte(n >> 16))
		buf.WriteByte(byte(n >> 24))
	default:
		buf.WriteByte(0xff)
		for i := 0; i < 8; i++ {
			buf.WriteByte(byte(n >> (8 * i)))
		}
	}
}
