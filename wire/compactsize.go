// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"

	"github.com/pkt-cash/pktscript/btcutil/er"
)

// MaxVarIntPayload is the maximum number of bytes a compact-size encoded
// integer occupies (one discriminant byte plus up to eight bytes). The
// readers in this file bound lengths with their maxAllowed argument instead.
const MaxVarIntPayload = 9

// ReadVarInt reads a variable length integer from r and returns it as a
// uint64, matching the Bitcoin "compact size" encoding:
//
//	< 0xfd          1 byte
//	<= 0xffff        0xfd followed by 2 bytes little-endian
//	<= 0xffffffff    0xfe followed by 4 bytes little-endian
//	else             0xff followed by 8 bytes little-endian
func ReadVarInt(r io.Reader) (uint64, er.R) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:1]); err != nil {
		return 0, er.E(err)
	}
	discriminant := b[0]

	var rv uint64
	switch discriminant {
	case 0xff:
		if _, err := io.ReadFull(r, b[:8]); err != nil {
			return 0, er.E(err)
		}
		rv = binary.LittleEndian.Uint64(b[:8])
	case 0xfe:
		if _, err := io.ReadFull(r, b[:4]); err != nil {
			return 0, er.E(err)
		}
		rv = uint64(binary.LittleEndian.Uint32(b[:4]))
	case 0xfd:
		if _, err := io.ReadFull(r, b[:2]); err != nil {
			return 0, er.E(err)
		}
		rv = uint64(binary.LittleEndian.Uint16(b[:2]))
	default:
		rv = uint64(discriminant)
	}
	return rv, nil
}

// WriteVarInt writes val to w using the compact-size encoding.
func WriteVarInt(w io.Writer, val uint64) er.R {
	if val < 0xfd {
		_, err := w.Write([]byte{byte(val)})
		return er.E(err)
	}
	if val <= 0xffff {
		var buf [3]byte
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(val))
		_, err := w.Write(buf[:])
		return er.E(err)
	}
	if val <= 0xffffffff {
		var buf [5]byte
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(val))
		_, err := w.Write(buf[:])
		return er.E(err)
	}
	var buf [9]byte
	buf[0] = 0xff
	binary.LittleEndian.PutUint64(buf[1:], val)
	_, err := w.Write(buf[:])
	return er.E(err)
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a compact-size integer.
func VarIntSerializeSize(val uint64) int {
	if val < 0xfd {
		return 1
	}
	if val <= 0xffff {
		return 3
	}
	if val <= 0xffffffff {
		return 5
	}
	return 9
}

// ReadVarBytes reads a compact-size length prefix followed by that many
// bytes. maxAllowed bounds the length so a corrupt or adversarial prefix
// can't trigger an oversized allocation; fieldName is used in the error.
func ReadVarBytes(r io.Reader, maxAllowed uint64, fieldName string) ([]byte, er.R) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > maxAllowed {
		return nil, er.Errorf("%s is larger than the max allowed size [count %d, max %d]",
			fieldName, count, maxAllowed)
	}
	b := make([]byte, count)
	if _, errr := io.ReadFull(r, b); errr != nil {
		return nil, er.E(errr)
	}
	return b, nil
}

// WriteVarBytes writes a compact-size length prefix followed by the bytes.
func WriteVarBytes(w io.Writer, b []byte) er.R {
	if err := WriteVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return er.E(err)
}
