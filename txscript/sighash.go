// Copyright (c) 2017-2022 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/binary"

	"github.com/pkt-cash/pktscript/btcutil/er"
	"github.com/pkt-cash/pktscript/chainhash"
	"github.com/pkt-cash/pktscript/txscript/params"
	"github.com/pkt-cash/pktscript/wire"
)

// TxSigHashes houses the partial set of sighash digests that only depend on
// the transaction itself, not the input being signed/verified. Reusing a
// single instance across every input of a transaction turns sighash
// computation from the historical O(N^2) into O(N).
//
// The plain fields back BIP143 (segwit v0); the V1 fields back BIP341
// (taproot). The V1 digests are single, not double, SHA256 per BIP341, and
// additionally commit to each previous output's value and pkScript since
// taproot signatures must bind to the exact coin being spent.
type TxSigHashes struct {
	HashPrevOuts chainhash.Hash
	HashSequence chainhash.Hash
	HashOutputs  chainhash.Hash

	HashPrevOutsV1      chainhash.Hash
	HashAmountsV1       chainhash.Hash
	HashScriptPubKeysV1 chainhash.Hash
	HashSequenceV1      chainhash.Hash
	HashOutputsV1       chainhash.Hash
}

// NewTxSigHashes computes the BIP143 sighash midstate for tx. It does not
// populate the BIP341 fields, since those require the full set of previous
// outputs; use NewTxSigHashesV1 when a taproot input may be validated.
func NewTxSigHashes(tx *wire.MsgTx) *TxSigHashes {
	return &TxSigHashes{
		HashPrevOuts: calcHashPrevOuts(tx),
		HashSequence: calcHashSequence(tx),
		HashOutputs:  calcHashOutputs(tx),
	}
}

// NewTxSigHashesV1 computes both the BIP143 and BIP341 sighash midstates for
// tx. prevOuts must contain exactly one entry per transaction input, in
// order, giving the output being spent by that input.
func NewTxSigHashesV1(tx *wire.MsgTx, prevOuts []*wire.TxOut) (*TxSigHashes, er.R) {
	if len(prevOuts) != len(tx.TxIn) {
		return nil, er.Errorf("got %d prevOuts for %d inputs", len(prevOuts), len(tx.TxIn))
	}

	var prevOutsBuf, amountsBuf, pkScriptsBuf, sequenceBuf bytes.Buffer
	for i, in := range tx.TxIn {
		prevOutsBuf.Write(in.PreviousOutPoint.Hash[:])
		var idx [4]byte
		binary.LittleEndian.PutUint32(idx[:], in.PreviousOutPoint.Index)
		prevOutsBuf.Write(idx[:])

		var amt [8]byte
		binary.LittleEndian.PutUint64(amt[:], uint64(prevOuts[i].Value))
		amountsBuf.Write(amt[:])

		wire.WriteVarBytes(&pkScriptsBuf, prevOuts[i].PkScript)

		var seq [4]byte
		binary.LittleEndian.PutUint32(seq[:], in.Sequence)
		sequenceBuf.Write(seq[:])
	}

	var outputsBuf bytes.Buffer
	for _, out := range tx.TxOut {
		wire.WriteTxOut(&outputsBuf, out)
	}

	return &TxSigHashes{
		HashPrevOuts: calcHashPrevOuts(tx),
		HashSequence: calcHashSequence(tx),
		HashOutputs:  calcHashOutputs(tx),

		HashPrevOutsV1:      chainhash.HashH(prevOutsBuf.Bytes()),
		HashAmountsV1:       chainhash.HashH(amountsBuf.Bytes()),
		HashScriptPubKeysV1: chainhash.HashH(pkScriptsBuf.Bytes()),
		HashSequenceV1:      chainhash.HashH(sequenceBuf.Bytes()),
		HashOutputsV1:       chainhash.HashH(outputsBuf.Bytes()),
	}, nil
}

// sigHashExtFlag distinguishes a taproot key-path spend (0) from a
// script-path (tapscript) spend (1) in the BIP341 spend-type byte.
type sigHashExtFlag byte

const (
	sigHashExtFlagKeyPath    sigHashExtFlag = 0
	sigHashExtFlagScriptPath sigHashExtFlag = 1
)

// TapSighashOpts carries the script-path-only fields of the BIP341 sighash
// message. Leave the zero value for a key-path spend.
type TapSighashOpts struct {
	// TapLeafHash is the tagged hash of the tapscript being executed.
	TapLeafHash chainhash.Hash
	// KeyVersion is always 0 per BIP342.
	KeyVersion byte
	// CodeSepPos is the opcode position (index among the tapscript's
	// parsed opcodes) of the last executed OP_CODESEPARATOR in the
	// tapscript, or 0xffffffff if none was executed.
	CodeSepPos uint32
	// ScriptPath is true for a script-path (tapscript) spend.
	ScriptPath bool
}

// CalcTaprootSignatureHash computes the BIP341 TapSighash digest for input
// idx of tx, given the precomputed midstate, the sighash type, the full set
// of previous outputs, an optional annex (nil if absent), and script-path
// details when applicable.
func CalcTaprootSignatureHash(sigHashes *TxSigHashes, hashType params.SigHashType,
	tx *wire.MsgTx, idx int, prevOuts []*wire.TxOut, annex []byte, opts *TapSighashOpts) ([]byte, er.R) {

	if idx >= len(tx.TxIn) {
		return nil, er.Errorf("idx %d but %d txins", idx, len(tx.TxIn))
	}
	if len(prevOuts) != len(tx.TxIn) {
		return nil, er.Errorf("got %d prevOuts for %d inputs", len(prevOuts), len(tx.TxIn))
	}

	var sigMsg bytes.Buffer

	// Epoch, as defined by BIP341.
	sigMsg.WriteByte(0x00)

	sigMsg.WriteByte(byte(hashType))

	var bVersion [4]byte
	binary.LittleEndian.PutUint32(bVersion[:], uint32(tx.Version))
	sigMsg.Write(bVersion[:])

	var bLockTime [4]byte
	binary.LittleEndian.PutUint32(bLockTime[:], tx.LockTime)
	sigMsg.Write(bLockTime[:])

	anyoneCanPay := hashType&params.SigHashAnyOneCanPay == params.SigHashAnyOneCanPay
	sigHashType := hashType & params.SigHashMask

	if !anyoneCanPay {
		sigMsg.Write(sigHashes.HashPrevOutsV1[:])
		sigMsg.Write(sigHashes.HashAmountsV1[:])
		sigMsg.Write(sigHashes.HashScriptPubKeysV1[:])
		sigMsg.Write(sigHashes.HashSequenceV1[:])
	}

	if sigHashType != params.SigHashNone && sigHashType != params.SigHashSingle {
		sigMsg.Write(sigHashes.HashOutputsV1[:])
	}

	spendType := byte(0)
	hasAnnex := annex != nil
	if hasAnnex {
		spendType |= 0x01
	}
	if opts != nil && opts.ScriptPath {
		spendType |= 0x02
	}
	sigMsg.WriteByte(spendType)

	if anyoneCanPay {
		txIn := tx.TxIn[idx]
		sigMsg.Write(txIn.PreviousOutPoint.Hash[:])
		var idxBuf [4]byte
		binary.LittleEndian.PutUint32(idxBuf[:], txIn.PreviousOutPoint.Index)
		sigMsg.Write(idxBuf[:])

		var amt [8]byte
		binary.LittleEndian.PutUint64(amt[:], uint64(prevOuts[idx].Value))
		sigMsg.Write(amt[:])

		wire.WriteVarBytes(&sigMsg, prevOuts[idx].PkScript)

		var seq [4]byte
		binary.LittleEndian.PutUint32(seq[:], txIn.Sequence)
		sigMsg.Write(seq[:])
	} else {
		var inputIdx [4]byte
		binary.LittleEndian.PutUint32(inputIdx[:], uint32(idx))
		sigMsg.Write(inputIdx[:])
	}

	if hasAnnex {
		var annexBuf bytes.Buffer
		wire.WriteVarBytes(&annexBuf, annex)
		annexHash := chainhash.HashH(annexBuf.Bytes())
		sigMsg.Write(annexHash[:])
	}

	if sigHashType == params.SigHashSingle {
		if idx >= len(tx.TxOut) {
			return nil, er.Errorf("sighash single but idx %d >= %d outputs", idx, len(tx.TxOut))
		}
		var outBuf bytes.Buffer
		wire.WriteTxOut(&outBuf, tx.TxOut[idx])
		outHash := chainhash.HashH(outBuf.Bytes())
		sigMsg.Write(outHash[:])
	}

	if opts != nil && opts.ScriptPath {
		sigMsg.Write(opts.TapLeafHash[:])
		sigMsg.WriteByte(opts.KeyVersion)
		var codeSepBuf [4]byte
		binary.LittleEndian.PutUint32(codeSepBuf[:], opts.CodeSepPos)
		sigMsg.Write(codeSepBuf[:])
	}

	return chainhash.TaggedHash(chainhash.TagTapSighash, sigMsg.Bytes())[:], nil
}
