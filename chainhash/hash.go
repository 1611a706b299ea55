// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the fixed-width hash primitives consensus code
// hashes on: single/double SHA256, HASH160, and the BIP340 tagged hash used
// by taproot. Hashes are stored internal (little-endian, as produced by the
// hash function) and displayed reversed, matching the reference client.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160" //lint:ignore SA1019 ripemd160 is deprecated but required by consensus

	"github.com/pkt-cash/pktscript/btcutil/er"
)

// HashSize is the size, in bytes, of a hash used by the chain consensus
// rules (txid, wtxid, merkle roots, etc).
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that has too many characters.
var ErrHashStrSize = er.GenericErrorType.Code("ErrHashStrSize")

// Hash is used in several of the bitcoin messages and common structures. It
// typically represents the double sha256 of data.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash, matching the convention used for display (e.g. block explorers).
func (h Hash) String() string {
	var hexBytes [HashSize * 2]byte
	const hexDigits = "0123456789abcdef"
	for i, b := range h {
		rev := HashSize - 1 - i
		hexBytes[rev*2] = hexDigits[b>>4]
		hexBytes[rev*2+1] = hexDigits[b&0x0f]
	}
	return string(hexBytes[:])
}

// CloneBytes returns a copy of the bytes which represent the hash as a byte
// slice.
func (h *Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, h[:])
	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) er.R {
	if len(newHash) != HashSize {
		return er.Errorf("invalid hash length of %v, want %v", len(newHash), HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as the hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHash returns a new Hash from a byte slice.
func NewHash(newHash []byte) (*Hash, er.R) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}

// NewHashFromStr creates a Hash from a hash string. The string should be
// the canonical hex string of a byte-reversed hash.
func NewHashFromStr(hash string) (*Hash, er.R) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash to
// a destination.
func Decode(dst *Hash, src string) er.R {
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize.New("", nil)
	}

	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	var reversedHash Hash
	_, errr := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if errr != nil {
		return er.E(errr)
	}

	for i, b := range reversedHash[:HashSize/2] {
		reversedHash[i], reversedHash[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}
	*dst = reversedHash
	return nil
}

// HashB calculates the single SHA256 hash of the passed data and returns it
// as a byte slice.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates the single SHA256 hash of the passed data and returns it
// as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates SHA256(SHA256(b)) and returns it as a byte slice.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates SHA256(SHA256(b)) and returns it as a Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// Ripemd160 calculates the RIPEMD160 hash of the passed data.
func Ripemd160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(b)
	return h.Sum(nil)
}

// Hash160 calculates RIPEMD160(SHA256(b)), the hash used to commit to
// public keys and redeem scripts (P2PKH, P2SH, P2WPKH, P2WSH programs).
func Hash160(b []byte) []byte {
	return Ripemd160(HashB(b))
}
