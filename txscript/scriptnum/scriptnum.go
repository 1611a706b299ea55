// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scriptnum implements the script number encoding used by the
// numeric opcodes: a little-endian, sign-magnitude, minimally-encoded
// integer limited to a configurable byte width.
package scriptnum

import (
	"fmt"

	"github.com/pkt-cash/pktscript/btcutil/er"
	"github.com/pkt-cash/pktscript/txscript/txscripterr"
)

// defaultScriptNumLen is the default number of bytes data being interpreted
// as an integer may be.
const defaultScriptNumLen = 4

// ScriptNum represents a numeric value used in the scripting engine with
// special handling to deal with the subtle semantics required by consensus.
//
// All numbers are stored on the stack as little endian with a sign bit. All
// numeric opcodes such as OP_ADD, OP_SUB, and OP_MUL, are only allowed to
// operate on 4-byte integers, but results may overflow and remain valid so
// long as they are not used as input to other numeric opcodes. These wider
// results may be up to 8 bytes and still be used as a valid input to other
// numeric operations.
type ScriptNum int64

// checkMinimalDataEncoding returns whether or not the passed byte array
// adheres to the minimal encoding rules.
func checkMinimalDataEncoding(v []byte) er.R {
	if len(v) == 0 {
		return nil
	}

	// Check that the number is encoded with the minimum possible number
	// of bytes.
	//
	// If the most-significant-byte - excluding the sign bit - is zero
	// then we're not minimal. Note how this test also rejects the
	// negative-zero encoding, [0x80].
	if v[len(v)-1]&0x7f == 0 {
		// One exception: if there's more than one byte and the most
		// significant bit of the second-to-last byte is set it would
		// conflict with the sign bit, so a single 0 byte is required
		// in that case.
		if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
			return txscripterr.ScriptError(txscripterr.ErrMinimalData,
				"numeric value encoded as non-minimally encoded script number")
		}
	}

	return nil
}

// MakeScriptNum interprets the passed serialized bytes as an encoded script
// number and returns the resulting ScriptNum. Since the consensus rules
// dictate that serialized bytes interpreted as an integer must be of a
// certain maximum length, the scriptNumLen parameter is provided to allow
// parsing smaller or larger data as needed.
//
// The requireMinimal flag causes an error to be returned if the encoded
// bytes are not a minimal length encoding of the number they represent.
//
// Errors from this function are typed txscripterr.Error with an error code
// of ErrNumberTooBig if the passed data is longer than the passed scriptNumLen
// value, or ErrMinimalData if requireMinimal is true and the passed data is
// not minimally encoded.
func MakeScriptNum(v []byte, requireMinimal bool, scriptNumLen int) (ScriptNum, er.R) {
	// Interpreting data requires that it is not larger than the passed
	// scriptNumLen value.
	if len(v) > scriptNumLen {
		str := fmt.Sprintf("numeric value encoded as 0x%x is longer than "+
			"the max allowed of %d", v, scriptNumLen)
		return 0, txscripterr.ScriptError(txscripterr.ErrNumberTooBig, str)
	}

	// Enforce minimal encoded if requested.
	if requireMinimal {
		if err := checkMinimalDataEncoding(v); err != nil {
			return 0, err
		}
	}

	// Zero is encoded as an empty byte slice.
	if len(v) == 0 {
		return 0, nil
	}

	// Decode from little endian sign-magnitude representation.
	var result int64
	for i, b := range v {
		result |= int64(b) << uint8(8*i)
	}

	// When the most significant byte of the input bytes has the sign bit
	// set, the result is negative. So, remove the sign bit and make the
	// result negative.
	if v[len(v)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint8(8*(len(v)-1)))
		return ScriptNum(-result), nil
	}

	return ScriptNum(result), nil
}

// Bytes returns the number serialized as a little endian with a sign bit.
//
// Example encodings:
//
//	     127 -> [0x7f]
//	    -127 -> [0xff]
//	     128 -> [0x80 0x00]
//	    -128 -> [0x80 0x80]
//	     129 -> [0x81 0x00]
//	    -129 -> [0x81 0x80]
//	     256 -> [0x00 0x01]
//	    -256 -> [0x00 0x81]
//	 32767 -> [0xff 0x7f]
//	-32767 -> [0xff 0xff]
//	 32768 -> [0x00 0x80 0x00]
//	-32768 -> [0x00 0x80 0x80]
func (n ScriptNum) Bytes() []byte {
	// Zero encodes as an empty byte slice.
	if n == 0 {
		return nil
	}

	// Take the absolute value and keep track of whether it was originally
	// negative.
	isNegative := n < 0
	if isNegative {
		n = -n
	}

	// Encode to little endian. The maximum number of encoded bytes is
	// required to handle the case of the largest negative number.
	result := make([]byte, 0, 9)
	for n > 0 {
		result = append(result, byte(n&0xff))
		n >>= 8
	}

	// When the most significant byte already has the high bit set, an
	// additional high byte is required to indicate whether the number is
	// negative or positive. The additional byte is removed when converting
	// back to an integral and its high bit is set accordingly.
	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)

	} else if isNegative {
		result[len(result)-1] |= 0x80
	}

	return result
}

// Int32 returns the script number clamped to a valid int32. That is to say
// that if the script number is too big to fit into an int32, the max int32
// value is returned accordingly. Similarly, if it is too small to fit into
// an int32, the min int32 value is returned.
func (n ScriptNum) Int32() int32 {
	if n > maxInt32 {
		return maxInt32
	}

	if n < minInt32 {
		return minInt32
	}

	return int32(n)
}

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
)

// DefaultScriptNumLen is the byte width consensus uses for ordinary
// arithmetic opcodes.
const DefaultScriptNumLen = defaultScriptNumLen
