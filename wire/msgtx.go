// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the wire-format serialization primitives the
// consensus core hashes over: compact-size integers, the outpoint/input/
// output triple, and the transaction's legacy and segwit encodings.
package wire

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkt-cash/pktscript/btcutil/er"
	"github.com/pkt-cash/pktscript/chainhash"
)

// defaultTxInOutAlloc is a sizing hint for the backing arrays of TxIn/TxOut
// slices; transactions dynamically grow past it as needed.
const defaultTxInOutAlloc = 8

// OutPoint identifies a previous transaction's output by transaction id and
// output index.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new OutPoint.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{Hash: *hash, Index: index}
}

func (o OutPoint) serializeSize() int {
	return chainhash.HashSize + 4
}

func writeOutPoint(w io.Writer, o *OutPoint) er.R {
	if _, err := w.Write(o.Hash[:]); err != nil {
		return er.E(err)
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], o.Index)
	_, err := w.Write(buf[:])
	return er.E(err)
}

func readOutPoint(r io.Reader, o *OutPoint) er.R {
	if _, err := io.ReadFull(r, o.Hash[:]); err != nil {
		return er.E(err)
	}
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return er.E(err)
	}
	o.Index = binary.LittleEndian.Uint32(buf[:])
	return nil
}

// TxWitness is the witness carried by a single input: an ordered list of
// byte strings. An empty (nil or zero-length) TxWitness is equivalent to
// the input having no witness at all.
type TxWitness [][]byte

// SerializeSize returns the number of bytes the wire serialization of the
// witness stack would occupy: a compact-size count of its elements followed
// by each element's own compact-size length prefix and payload.
func (t TxWitness) SerializeSize() int {
	n := VarIntSerializeSize(uint64(len(t)))
	for _, item := range t {
		n += VarIntSerializeSize(uint64(len(item))) + len(item)
	}
	return n
}

func writeTxWitness(w io.Writer, wit TxWitness) er.R {
	if err := WriteVarInt(w, uint64(len(wit))); err != nil {
		return err
	}
	for _, item := range wit {
		if err := WriteVarBytes(w, item); err != nil {
			return err
		}
	}
	return nil
}

func readTxWitness(r io.Reader) (TxWitness, er.R) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > MaxWitnessItemsPerInput {
		return nil, er.Errorf("too many witness items to fit into "+
			"max message size [count %d]", count)
	}
	wit := make(TxWitness, count)
	for i := range wit {
		item, err := ReadVarBytes(r, MaxWitnessItemSize, "witness item")
		if err != nil {
			return nil, err
		}
		wit[i] = item
	}
	return wit, nil
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
	Witness          TxWitness
}

// NewTxIn returns a new TxIn with the default sequence MaxTxInSequenceNum,
// which disables relative locktime and CHECKSEQUENCEVERIFY for the input.
func NewTxIn(prevOut *OutPoint, signatureScript []byte, witness [][]byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
		Witness:          witness,
	}
}

func (t *TxIn) serializeSizeNoWitness() int {
	return t.PreviousOutPoint.serializeSize() + 4 +
		VarIntSerializeSize(uint64(len(t.SignatureScript))) + len(t.SignatureScript)
}

func writeTxIn(w io.Writer, ti *TxIn) er.R {
	if err := writeOutPoint(w, &ti.PreviousOutPoint); err != nil {
		return err
	}
	if err := WriteVarBytes(w, ti.SignatureScript); err != nil {
		return err
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], ti.Sequence)
	_, err := w.Write(buf[:])
	return er.E(err)
}

func readTxIn(r io.Reader, ti *TxIn) er.R {
	if err := readOutPoint(r, &ti.PreviousOutPoint); err != nil {
		return err
	}
	sigScript, err := ReadVarBytes(r, MaxWitnessItemSize, "signature script")
	if err != nil {
		return err
	}
	ti.SignatureScript = sigScript
	var buf [4]byte
	if _, errr := io.ReadFull(r, buf[:]); errr != nil {
		return er.E(errr)
	}
	ti.Sequence = binary.LittleEndian.Uint32(buf[:])
	return nil
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new TxOut.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

func (t *TxOut) serializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// WriteTxOut writes a single transaction output in wire format; this is the
// building block for the BIP143/BIP341 "hashOutputs" commitment as well as
// for full transaction serialization.
func WriteTxOut(w io.Writer, to *TxOut) er.R {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(to.Value))
	if _, err := w.Write(buf[:]); err != nil {
		return er.E(err)
	}
	return WriteVarBytes(w, to.PkScript)
}

func readTxOut(r io.Reader, to *TxOut) er.R {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return er.E(err)
	}
	to.Value = int64(binary.LittleEndian.Uint64(buf[:]))
	pkScript, err := ReadVarBytes(r, MaxWitnessItemSize, "public key script")
	if err != nil {
		return err
	}
	to.PkScript = pkScript
	return nil
}

// MsgTx implements the bitcoin transaction: a version, an ordered list of
// inputs and outputs, and a locktime. Inputs optionally carry a witness; the
// transaction is serialized in the segwit form (with marker/flag bytes and
// witness data appended after the outputs) if and only if any input has a
// non-empty witness.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new, empty MsgTx with the given version.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
		TxIn:    make([]*TxIn, 0, defaultTxInOutAlloc),
		TxOut:   make([]*TxOut, 0, defaultTxInOutAlloc),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// HasWitness returns true if any input carries a non-empty witness, meaning
// this transaction must use the segwit serialization form.
func (msg *MsgTx) HasWitness() bool {
	for _, txIn := range msg.TxIn {
		if len(txIn.Witness) > 0 {
			return true
		}
	}
	return false
}

// Copy returns a deep copy so that mutating the copy (e.g. while building a
// legacy sighash scratch transaction) never affects the original.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}

	for _, oldTxIn := range msg.TxIn {
		sigScript := make([]byte, len(oldTxIn.SignatureScript))
		copy(sigScript, oldTxIn.SignatureScript)

		var witness TxWitness
		if len(oldTxIn.Witness) > 0 {
			witness = make(TxWitness, len(oldTxIn.Witness))
			for i, item := range oldTxIn.Witness {
				w := make([]byte, len(item))
				copy(w, item)
				witness[i] = w
			}
		}

		newTx.TxIn = append(newTx.TxIn, &TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  sigScript,
			Sequence:         oldTxIn.Sequence,
			Witness:          witness,
		})
	}

	for _, oldTxOut := range msg.TxOut {
		pkScript := make([]byte, len(oldTxOut.PkScript))
		copy(pkScript, oldTxOut.PkScript)
		newTx.TxOut = append(newTx.TxOut, &TxOut{
			Value:    oldTxOut.Value,
			PkScript: pkScript,
		})
	}

	return &newTx
}

// shallowCopy makes a shallow copy, reusing input/output pointers' backing
// data but not the TxIn/TxOut slices themselves, cheap enough to use per
// legacy sighash computation.
func (msg *MsgTx) shallowCopy() *MsgTx {
	txCopy := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, len(msg.TxIn)),
		TxOut:    make([]*TxOut, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}
	txIns := make([]TxIn, len(msg.TxIn))
	for i, oldTxIn := range msg.TxIn {
		txIns[i] = *oldTxIn
		txCopy.TxIn[i] = &txIns[i]
	}
	txOuts := make([]TxOut, len(msg.TxOut))
	for i, oldTxOut := range msg.TxOut {
		txOuts[i] = *oldTxOut
		txCopy.TxOut[i] = &txOuts[i]
	}
	return &txCopy
}

// ShallowCopy exposes shallowCopy for the signature-hash engine, which needs
// a cheap scratch copy whose inputs/outputs it mutates independently of the
// original transaction.
func (msg *MsgTx) ShallowCopy() *MsgTx {
	return msg.shallowCopy()
}

func (msg *MsgTx) serializeSizeStripped() int {
	n := 4 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut))) + 4
	for _, txIn := range msg.TxIn {
		n += txIn.serializeSizeNoWitness()
	}
	for _, txOut := range msg.TxOut {
		n += txOut.serializeSize()
	}
	return n
}

// SerializeSizeStripped returns the number of bytes the legacy (no witness)
// serialization of the transaction occupies.
func (msg *MsgTx) SerializeSizeStripped() int {
	return msg.serializeSizeStripped()
}

// SerializeSize returns the number of bytes the wire serialization of the
// transaction would occupy, in whichever form (legacy or segwit) Serialize
// would pick.
func (msg *MsgTx) SerializeSize() int {
	n := msg.serializeSizeStripped()
	if msg.HasWitness() {
		n += 2 // marker, flag
		for _, txIn := range msg.TxIn {
			n += txIn.Witness.SerializeSize()
		}
	}
	return n
}

// SerializeNoWitness writes the legacy (pre-segwit) encoding of the
// transaction: version, inputs, outputs, locktime. This is both the txid
// commitment and the base of the legacy sighash.
func (msg *MsgTx) SerializeNoWitness(w io.Writer) er.R {
	var verBuf [4]byte
	binary.LittleEndian.PutUint32(verBuf[:], uint32(msg.Version))
	if _, err := w.Write(verBuf[:]); err != nil {
		return er.E(err)
	}

	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := WriteTxOut(w, to); err != nil {
			return err
		}
	}

	var lockBuf [4]byte
	binary.LittleEndian.PutUint32(lockBuf[:], msg.LockTime)
	_, err := w.Write(lockBuf[:])
	return er.E(err)
}

// Serialize writes the transaction in the segwit wire form (marker 0x00,
// flag 0x01, witnesses appended after the outputs) whenever any input
// carries a witness, and the legacy form otherwise.
func (msg *MsgTx) Serialize(w io.Writer) er.R {
	if !msg.HasWitness() {
		return msg.SerializeNoWitness(w)
	}

	var verBuf [4]byte
	binary.LittleEndian.PutUint32(verBuf[:], uint32(msg.Version))
	if _, err := w.Write(verBuf[:]); err != nil {
		return er.E(err)
	}
	if _, err := w.Write([]byte{WitnessMarkerByte, WitnessFlagByte}); err != nil {
		return er.E(err)
	}

	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := WriteTxOut(w, to); err != nil {
			return err
		}
	}

	for _, ti := range msg.TxIn {
		if err := writeTxWitness(w, ti.Witness); err != nil {
			return err
		}
	}

	var lockBuf [4]byte
	binary.LittleEndian.PutUint32(lockBuf[:], msg.LockTime)
	_, err := w.Write(lockBuf[:])
	return er.E(err)
}

// Deserialize reads a transaction from r, auto-detecting the legacy vs.
// segwit marker/flag encoding: after the version, a zero input count is
// read as the witness marker (0x00) and must be followed by the flag byte
// 0x01 (any other flag is an error), selecting the segwit form; a non-zero
// count is the input count of the legacy form.
func (msg *MsgTx) Deserialize(r io.Reader) er.R {
	var verBuf [4]byte
	if _, err := io.ReadFull(r, verBuf[:]); err != nil {
		return er.E(err)
	}
	msg.Version = int32(binary.LittleEndian.Uint32(verBuf[:]))

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}

	var flag [1]byte
	hasWitness := false
	if count == 0 {
		if _, err := io.ReadFull(r, flag[:]); err != nil {
			return er.E(err)
		}
		if flag[0] != WitnessFlagByte {
			return er.Errorf("witness tx but flag byte is %x", flag[0])
		}
		hasWitness = true
		count, err = ReadVarInt(r)
		if err != nil {
			return err
		}
	}
	if count > maxTxInOutPerTx {
		return er.Errorf("too many input transactions to fit into "+
			"max message size [count %d]", count)
	}

	txIns := make([]TxIn, count)
	msg.TxIn = make([]*TxIn, count)
	for i := range txIns {
		if err := readTxIn(r, &txIns[i]); err != nil {
			return err
		}
		msg.TxIn[i] = &txIns[i]
	}

	outCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if outCount > maxTxInOutPerTx {
		return er.Errorf("too many output transactions to fit into "+
			"max message size [count %d]", outCount)
	}
	txOuts := make([]TxOut, outCount)
	msg.TxOut = make([]*TxOut, outCount)
	for i := range txOuts {
		if err := readTxOut(r, &txOuts[i]); err != nil {
			return err
		}
		msg.TxOut[i] = &txOuts[i]
	}

	if hasWitness {
		for _, txIn := range msg.TxIn {
			wit, err := readTxWitness(r)
			if err != nil {
				return err
			}
			txIn.Witness = wit
		}
	}

	var lockBuf [4]byte
	if _, err := io.ReadFull(r, lockBuf[:]); err != nil {
		return er.E(err)
	}
	msg.LockTime = binary.LittleEndian.Uint32(lockBuf[:])
	return nil
}

// TxHash computes the transaction id: the double-SHA256 of the legacy
// (no-witness) serialization. Mutating only a witness never changes this.
func (msg *MsgTx) TxHash() chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(msg.serializeSizeStripped())
	_ = msg.SerializeNoWitness(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// WitnessHash computes the witness transaction id (wtxid): the double-SHA256
// of the full (segwit-form) serialization when any input carries a witness,
// and equal to TxHash otherwise.
func (msg *MsgTx) WitnessHash() chainhash.Hash {
	if !msg.HasWitness() {
		return msg.TxHash()
	}
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	_ = msg.Serialize(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}
