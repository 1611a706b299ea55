// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"math/big"

	"github.com/pkt-cash/pktscript/btcec"
	"github.com/pkt-cash/pktscript/btcutil/er"
	"github.com/pkt-cash/pktscript/chainhash"
	"github.com/pkt-cash/pktscript/txscript/opcode"
	"github.com/pkt-cash/pktscript/txscript/params"
	"github.com/pkt-cash/pktscript/txscript/parsescript"
	"github.com/pkt-cash/pktscript/txscript/scriptbuilder"
	"github.com/pkt-cash/pktscript/wire"
)

// RawTxInSignature returns the serialized ECDSA signature for the input idx
// of tx, signed over subScript using the legacy (pre-segwit) sighash
// algorithm. The returned signature has the hashType byte appended, ready to
// be pushed directly into a SignatureScript.
func RawTxInSignature(tx *wire.MsgTx, idx int, subScript []byte,
	hashType params.SigHashType, key *btcec.PrivateKey) ([]byte, er.R) {

	hash, err := CalcSignatureHash(subScript, hashType, tx, idx)
	if err != nil {
		return nil, err
	}

	sig := btcec.Sign(key, hash)
	return append(sig.Serialize(), byte(hashType)), nil
}

// RawTxInWitnessSignature returns the serialized ECDSA signature for the
// input idx of tx, signed over subScript under the BIP143 witness sighash
// algorithm, with the input amount amt folded into the digest.
func RawTxInWitnessSignature(tx *wire.MsgTx, sigHashes *TxSigHashes, idx int,
	amt int64, subScript []byte, hashType params.SigHashType,
	key *btcec.PrivateKey) ([]byte, er.R) {

	parsedScript, err := parsescript.ParseScript(subScript)
	if err != nil {
		return nil, er.Errorf("cannot parse output script: %v", err)
	}

	hash, err := calcWitnessSignatureHash(parsedScript, sigHashes, hashType, tx, idx, amt)
	if err != nil {
		return nil, err
	}

	sig := btcec.Sign(key, hash)
	return append(sig.Serialize(), byte(hashType)), nil
}

// RawTxInTaprootSignature returns the serialized 64 or 65-byte BIP340
// Schnorr signature for a taproot key-path spend of input idx of tx. key
// is used as given and must already be tweaked per BIP341 (see
// TweakTaprootPrivKey, with a nil merkle root for an output that has no
// script tree).
func RawTxInTaprootSignature(tx *wire.MsgTx, sigHashes *TxSigHashes, idx int,
	prevOuts []*wire.TxOut, hashType params.SigHashType,
	key *btcec.PrivateKey) ([]byte, er.R) {

	hash, err := CalcTaprootSignatureHash(sigHashes, hashType, tx, idx, prevOuts, nil, nil)
	if err != nil {
		return nil, err
	}

	sig, err := btcec.SchnorrSign(key, hash)
	if err != nil {
		return nil, err
	}

	sigBytes := sig.Serialize()
	if hashType != params.SigHashDefault {
		sigBytes = append(sigBytes, byte(hashType))
	}
	return sigBytes, nil
}

// TweakTaprootPrivKey returns a copy of key tweaked per BIP341, suitable for
// signing a taproot key-path spend whose output key commits to merkleRoot
// (nil for a key-path-only output with no script tree).
func TweakTaprootPrivKey(key *btcec.PrivateKey, merkleRoot []byte) (*btcec.PrivateKey, er.R) {
	pub := key.PubKey()
	internalKey := btcec.SerializeSchnorrPubKey(pub)

	tweak := tapTweakHash(internalKey, merkleRoot)

	curveOrder := btcec.S256().Params().N

	d := new(big.Int).SetBytes(key.Serialize())
	if pub.Y().Bit(0) == 1 {
		// BIP341 requires the internal key have an even-Y public
		// point; negate the scalar (and implicitly the point) when
		// it doesn't.
		d.Sub(curveOrder, d)
	}

	t := new(big.Int).SetBytes(tweak[:])
	d.Add(d, t)
	d.Mod(d, curveOrder)

	var dBytes [32]byte
	d.FillBytes(dBytes[:])

	tweakedKey, _ := btcec.PrivKeyFromBytes(dBytes[:])
	return tweakedKey, nil
}

// SignatureScript signs the previous output scriptPubKey being spent by
// input idx of tx, and returns the assembled unlocking data for it: an
// unlocking (sig) script, and, for segwit and taproot outputs, a witness
// stack. It handles these classes from GetScriptClass: P2PK, P2PKH,
// P2WPKH, P2SH (as P2SH(P2WPKH) only) and P2TR (key-path only); any other
// class is an error (multisig is signed with SignMultiSigRedeem).
func SignatureScript(tx *wire.MsgTx, sigHashes *TxSigHashes, idx int,
	prevOuts []*wire.TxOut, hashType params.SigHashType,
	key *btcec.PrivateKey, compress bool) ([]byte, wire.TxWitness, er.R) {

	pkScript := prevOuts[idx].PkScript
	amt := prevOuts[idx].Value
	class := GetScriptClass(pkScript)

	pub := key.PubKey()
	var pubKeyBytes []byte
	if compress {
		pubKeyBytes = pub.SerializeCompressed()
	} else {
		pubKeyBytes = pub.SerializeUncompressed()
	}

	switch class {
	case PubKeyTy:
		sig, err := RawTxInSignature(tx, idx, pkScript, hashType, key)
		if err != nil {
			return nil, nil, err
		}
		script, err := scriptbuilder.NewScriptBuilder().AddData(sig).Script()
		return script, nil, err

	case PubKeyHashTy:
		sig, err := RawTxInSignature(tx, idx, pkScript, hashType, key)
		if err != nil {
			return nil, nil, err
		}
		script, err := scriptbuilder.NewScriptBuilder().
			AddData(sig).AddData(pubKeyBytes).Script()
		return script, nil, err

	case WitnessV0PubKeyHashTy:
		redeemScript, err := payToPubKeyHashScript(chainhash.Hash160(pubKeyBytes))
		if err != nil {
			return nil, nil, err
		}
		sig, err := RawTxInWitnessSignature(tx, sigHashes, idx, amt, redeemScript, hashType, key)
		if err != nil {
			return nil, nil, err
		}
		return nil, wire.TxWitness{sig, pubKeyBytes}, nil

	case ScriptHashTy:
		// Only the P2SH(P2WPKH) nested-segwit template is handled
		// here; arbitrary P2SH redeem scripts require the caller to
		// supply the redeem script and sign it directly (see
		// SignMultiSigRedeem below for the multisig case).
		witnessProgram, err := payToWitnessPubKeyHashScript(chainhash.Hash160(pubKeyBytes))
		if err != nil {
			return nil, nil, err
		}
		sig, err := RawTxInWitnessSignature(tx, sigHashes, idx, amt, witnessProgram, hashType, key)
		if err != nil {
			return nil, nil, err
		}
		sigScript, err := scriptbuilder.NewScriptBuilder().AddData(witnessProgram).Script()
		if err != nil {
			return nil, nil, err
		}
		return sigScript, wire.TxWitness{sig, pubKeyBytes}, nil

	case WitnessV1TaprootTy:
		sig, err := RawTxInTaprootSignature(tx, sigHashes, idx, prevOuts, hashType, key)
		if err != nil {
			return nil, nil, err
		}
		return nil, wire.TxWitness{sig}, nil
	}

	return nil, nil, er.Errorf("cannot sign script class %v without an explicit redeem/witness script", class)
}

// SignMultiSigRedeem signs a bare, P2SH or P2WSH multisig output. subScript
// is the multisig (redeem/witness) script itself, witnessScript is true when
// the spend is via a witness program (P2WSH, or P2SH(P2WSH)) rather than a
// legacy P2SH sigScript, and privKeys supplies private keys in the same
// order the corresponding public keys appear within subScript (an entry may
// be nil to skip a key for which no private key is available).
//
// It returns the partial unlocking script or witness, which a caller may
// continue to assemble over multiple signing passes by concatenating
// privKeys across calls, so long as the total number of valid signatures
// reaches the script's required threshold before broadcast.
func SignMultiSigRedeem(tx *wire.MsgTx, sigHashes *TxSigHashes, idx int,
	prevOuts []*wire.TxOut, subScript []byte, hashType params.SigHashType,
	privKeys []*btcec.PrivateKey, witnessScript bool) ([]byte, wire.TxWitness, er.R) {

	amt := prevOuts[idx].Value

	sigs := make([][]byte, 0, len(privKeys))
	for _, key := range privKeys {
		if key == nil {
			continue
		}
		var sig []byte
		var err er.R
		if witnessScript {
			sig, err = RawTxInWitnessSignature(tx, sigHashes, idx, amt, subScript, hashType, key)
		} else {
			sig, err = RawTxInSignature(tx, idx, subScript, hashType, key)
		}
		if err != nil {
			return nil, nil, err
		}
		sigs = append(sigs, sig)
	}

	if witnessScript {
		witness := make(wire.TxWitness, 0, len(sigs)+2)
		// OP_0 null dummy: historical off-by-one in OP_CHECKMULTISIG
		// pops one extra stack item that it never examines.
		witness = append(witness, nil)
		witness = append(witness, sigs...)
		witness = append(witness, subScript)
		return nil, witness, nil
	}

	builder := scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_0)
	for _, sig := range sigs {
		builder.AddData(sig)
	}
	builder.AddData(subScript)
	script, err := builder.Script()
	return script, nil, err
}

// SignP2SHP2WSH assembles the sigScript that reveals a P2WSH witness
// program nested inside a P2SH output, pairing it with the witness produced
// for the inner P2WSH spend (e.g. by SignMultiSigRedeem with
// witnessScript=true, or a manually built witness for a single-key P2WSH
// output).
func SignP2SHP2WSH(witnessProgram []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddData(witnessProgram).Script()
}
