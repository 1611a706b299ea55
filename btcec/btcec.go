// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package btcec adapts the secp256k1 primitives used throughout txscript
// (ECDSA signature parsing/verification for legacy and segwit v0 scripts,
// BIP340 Schnorr signatures for tapscript) to the project's typed error
// convention. The heavy lifting - field arithmetic, point operations,
// signature math - all lives in the upstream secp256k1 implementation;
// this package only narrows its surface to what the script engine needs
// and turns its errors into er.R.
package btcec

import (
	"crypto/elliptic"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/pkt-cash/pktscript/btcutil/er"
)

// PrivateKey is a secp256k1 private key.
type PrivateKey = btcec.PrivateKey

// PublicKey is a secp256k1 public key.
type PublicKey = btcec.PublicKey

// Signature is a parsed ECDSA signature.
type Signature struct {
	sig *ecdsa.Signature
}

const (
	// PrivKeyBytesLen is the number of bytes of a serialized private key.
	PrivKeyBytesLen = 32

	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33
)

// S256 returns a curve value usable with the ParsePubKey/ParseSignature
// functions below. secp256k1 is the only curve this package ever dealt in,
// so the value exists for source compatibility and carries no information.
func S256() elliptic.Curve {
	return btcec.S256()
}

// NewPrivateKey generates a new private key.
func NewPrivateKey() (*PrivateKey, er.R) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, er.E(err)
	}
	return key, nil
}

// PrivKeyFromBytes turns raw bytes into a (private, public) key pair.
func PrivKeyFromBytes(privKeyBytes []byte) (*PrivateKey, *PublicKey) {
	return btcec.PrivKeyFromBytes(privKeyBytes)
}

// ParsePubKey parses a compressed, uncompressed or hybrid public key in the
// standard wire format. The curve argument is accepted for source
// compatibility with callers that still pass S256() explicitly.
func ParsePubKey(pubKeyStr []byte, _ elliptic.Curve) (*PublicKey, er.R) {
	pub, err := btcec.ParsePubKey(pubKeyStr)
	if err != nil {
		return nil, er.E(err)
	}
	return pub, nil
}

// ParseDERSignature parses a strict DER-encoded signature as required when
// ScriptVerifyDERSignatures or ScriptVerifyStrictEncoding is set.
func ParseDERSignature(sigStr []byte, _ elliptic.Curve) (*Signature, er.R) {
	sig, err := ecdsa.ParseDERSignature(sigStr)
	if err != nil {
		return nil, er.E(err)
	}
	return &Signature{sig: sig}, nil
}

// ParseSignature parses a signature using the more permissive BER-ish rules
// consensus allows absent the strict encoding flags.
func ParseSignature(sigStr []byte, _ elliptic.Curve) (*Signature, er.R) {
	sig, err := ecdsa.ParseSignature(sigStr)
	if err != nil {
		return nil, er.E(err)
	}
	return &Signature{sig: sig}, nil
}

// Verify reports whether the signature is valid for the given hash and
// public key.
func (s *Signature) Verify(hash []byte, pubKey *PublicKey) bool {
	return s.sig.Verify(hash, pubKey)
}

// Serialize returns the DER encoding of the signature.
func (s *Signature) Serialize() []byte {
	return s.sig.Serialize()
}

// SignCompact produces a compact (recoverable) ECDSA signature.
func SignCompact(key *PrivateKey, hash []byte, isCompressedKey bool) ([]byte, er.R) {
	sig := ecdsa.SignCompact(key, hash, isCompressedKey)
	return sig, nil
}

// RecoverCompact recovers the public key and compression flag from a
// compact signature produced by SignCompact.
func RecoverCompact(signature, hash []byte) (*PublicKey, bool, er.R) {
	pub, compressed, err := ecdsa.RecoverCompact(signature, hash)
	if err != nil {
		return nil, false, er.E(err)
	}
	return pub, compressed, nil
}

// Sign produces a deterministic (RFC6979) ECDSA signature.
func Sign(key *PrivateKey, hash []byte) *Signature {
	return &Signature{sig: ecdsa.Sign(key, hash)}
}

// SchnorrSign produces a BIP340 Schnorr signature over hash, as used by
// tapscript and taproot key-path spends.
func SchnorrSign(key *PrivateKey, hash []byte) (*schnorr.Signature, er.R) {
	sig, err := schnorr.Sign(key, hash)
	if err != nil {
		return nil, er.E(err)
	}
	return sig, nil
}

// SchnorrVerify verifies a 64-byte BIP340 Schnorr signature against a
// 32-byte x-only public key.
func SchnorrVerify(sigBytes []byte, hash []byte, pubKeyBytes []byte) (bool, er.R) {
	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return false, nil
	}
	pub, err := schnorr.ParsePubKey(pubKeyBytes)
	if err != nil {
		return false, nil
	}
	return sig.Verify(hash, pub), nil
}

// TweakPubKey adds tweak*G to pub and returns the resulting point along
// with the parity (true = odd Y) of that point, as required to verify a
// BIP341 taproot output-key commitment.
func TweakPubKey(pub *PublicKey, tweak [32]byte) (*PublicKey, bool, er.R) {
	curve := btcec.S256()
	tx, ty := curve.ScalarBaseMult(tweak[:])
	sx, sy := curve.Add(pub.X(), pub.Y(), tx, ty)
	if sx.Sign() == 0 && sy.Sign() == 0 {
		return nil, false, er.New("taproot tweak produced the point at infinity")
	}
	outPub := btcec.NewPublicKey(sx, sy)
	return outPub, sy.Bit(0) == 1, nil
}

// IsCompressedPubKey reports whether pubKey is a 33-byte compressed public
// key encoding (0x02/0x03 prefix).
func IsCompressedPubKey(pubKey []byte) bool {
	return len(pubKey) == PubKeyBytesLenCompressed &&
		(pubKey[0] == 0x02 || pubKey[0] == 0x03)
}

// CheckSignatureParseable returns an error unless sig is a strict DER
// encoding, without fully decoding it into a Signature value.
func CheckSignatureParseable(sig []byte) er.R {
	if _, err := ecdsa.ParseDERSignature(sig); err != nil {
		return er.E(err)
	}
	return nil
}

// SignatureHasLowS reports whether the DER-encoded sig has an S value that
// is <= half the group order, as BIP62/ScriptVerifyLowS requires.
func SignatureHasLowS(sig []byte) bool {
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return !parsed.S().IsOverHalfOrder()
}

// ParseSchnorrPubKey parses a 32-byte BIP340 x-only public key.
func ParseSchnorrPubKey(pubKeyStr []byte) (*PublicKey, er.R) {
	pub, err := schnorr.ParsePubKey(pubKeyStr)
	if err != nil {
		return nil, er.E(err)
	}
	return pub, nil
}

// SerializeSchnorrPubKey returns the 32-byte x-only encoding of pub.
func SerializeSchnorrPubKey(pub *PublicKey) []byte {
	return schnorr.SerializePubKey(pub)
}
