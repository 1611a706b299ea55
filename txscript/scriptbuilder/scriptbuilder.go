// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scriptbuilder provides a facility for building custom scripts.
package scriptbuilder

import (
	"fmt"

	"github.com/pkt-cash/pktscript/btcutil/er"
	"github.com/pkt-cash/pktscript/txscript/opcode"
	"github.com/pkt-cash/pktscript/txscript/params"
	"github.com/pkt-cash/pktscript/txscript/scriptnum"
	"github.com/pkt-cash/pktscript/txscript/txscripterr"
)

// defaultScriptAlloc is the default size used for the backing array for a
// script being built by the ScriptBuilder. The array will dynamically grow
// as needed, but this value was chosen such that the initial allocation
// rarely needs to grow.
const defaultScriptAlloc = 500

// ScriptBuilder provides a facility for building custom scripts. It allows
// you to push opcodes, ints, and data while respecting canonical encoding.
// In general it does not ensure the script it creates is valid. However
// there are a few cases in which it does.
//
// For example, all signed integers are automatically converted to
// negative numbers when needed and optimized into the fewest number of
// bytes possible.
//
// Errors are accumulated in the builder so that a script can be built up
// in a series of method calls and the final error checked once at the
// end of the process via the final Script call.
type ScriptBuilder struct {
	script []byte
	err    er.R
}

// AddOp pushes the passed opcode to the end of the script. The script will
// not be modified if pushing the opcode would cause the script to exceed
// the maximum allowed script size.
func (b *ScriptBuilder) AddOp(op byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Pushes that would cause the script to exceed the largest allowed
	// script size would result in a non-canonical script.
	if len(b.script)+1 > params.MaxScriptSize {
		str := fmt.Sprintf("adding an opcode would exceed the maximum "+
			"allowed canonical script length of %d", params.MaxScriptSize)
		b.err = txscripterr.ScriptError(txscripterr.ErrScriptTooBig, str)
		return b
	}

	b.script = append(b.script, op)
	return b
}

// AddOps pushes the passed opcodes to the end of the script. The script
// will not be modified if pushing the opcodes would cause the script to
// exceed the maximum allowed script size.
func (b *ScriptBuilder) AddOps(opcodes []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	if len(b.script)+len(opcodes) > params.MaxScriptSize {
		str := fmt.Sprintf("adding opcodes would exceed the maximum "+
			"allowed canonical script length of %d", params.MaxScriptSize)
		b.err = txscripterr.ScriptError(txscripterr.ErrScriptTooBig, str)
		return b
	}

	b.script = append(b.script, opcodes...)
	return b
}

// canonicalDataSize returns the number of bytes the canonical encoding of
// the data will take.
func canonicalDataSize(data []byte) int {
	dataLen := len(data)

	// When the data consists of a single number that can be represented
	// by one of the "small integer" opcodes, that opcode will be instead
	// of a data push opcode followed by the number.
	if dataLen == 0 {
		return 1
	} else if dataLen == 1 && data[0] <= 16 {
		return 1
	} else if dataLen == 1 && data[0] == 0x81 {
		return 1
	}

	if dataLen < opcode.OP_PUSHDATA1 {
		return 1 + dataLen
	} else if dataLen <= 0xff {
		return 2 + dataLen
	} else if dataLen <= 0xffff {
		return 3 + dataLen
	}

	return 5 + dataLen
}

// addData is the internal function used to add the passed byte slice to
// the script unmodified regardless of whether or not it would end up
// being a canonical push.
func (b *ScriptBuilder) addData(data []byte) *ScriptBuilder {
	dataLen := len(data)

	// When the data consists of a single number that can be represented
	// by one of the "small integer" opcodes, use that opcode instead of
	// a data push opcode followed by the number.
	if dataLen == 0 || (dataLen == 1 && data[0] == 0) {
		b.script = append(b.script, opcode.OP_0)
		return b
	} else if dataLen == 1 && data[0] <= 16 {
		b.script = append(b.script, opcode.OP_1-1+data[0])
		return b
	} else if dataLen == 1 && data[0] == 0x81 {
		b.script = append(b.script, opcode.OP_1NEGATE)
		return b
	}

	// Use one of the OP_DATA_# opcodes if the length of the data is
	// small enough so the data can be done in a single instruction.
	if dataLen < opcode.OP_PUSHDATA1 {
		b.script = append(b.script, byte((opcode.OP_DATA_1-1)+byte(dataLen)))
	} else if dataLen <= 0xff {
		b.script = append(b.script, opcode.OP_PUSHDATA1, byte(dataLen))
	} else if dataLen <= 0xffff {
		buf := make([]byte, 2)
		buf[0] = byte(dataLen)
		buf[1] = byte(dataLen >> 8)
		b.script = append(b.script, opcode.OP_PUSHDATA2)
		b.script = append(b.script, buf...)
	} else {
		buf := make([]byte, 4)
		buf[0] = byte(dataLen)
		buf[1] = byte(dataLen >> 8)
		buf[2] = byte(dataLen >> 16)
		buf[3] = byte(dataLen >> 24)
		b.script = append(b.script, opcode.OP_PUSHDATA4)
		b.script = append(b.script, buf...)
	}

	// Append the actual data.
	b.script = append(b.script, data...)

	return b
}

// AddFullData should not typically be used by ordinary users as it does not
// include the checks that prevent data pushes larger than the maximum
// allowed sizes which leads to scripts that can't be executed. This
// function is only provided for testing purposes such as regression tests
// where sizes are intentionally made larger than allowed.
//
// Use AddData instead.
func (b *ScriptBuilder) AddFullData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	return b.addData(data)
}

// AddData pushes the passed data to the end of the script. It automatically
// chooses canonical opcodes depending on the length of the data. A zero
// length buffer will lead to a push of empty data onto the stack (OP_0) and
// any push of data greater than MaxScriptElementSize will not modify the
// script since that is not allowed by the script engine. Also, the script
// will not be modified if pushing the data would cause the script to
// exceed the maximum allowed script size.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Pushes that would cause the script to exceed the largest allowed
	// script size would result in a non-canonical script.
	dataSize := canonicalDataSize(data)
	if len(b.script)+dataSize > params.MaxScriptSize {
		str := fmt.Sprintf("adding datapush would exceed the maximum "+
			"allowed canonical script length of %d", params.MaxScriptSize)
		b.err = txscripterr.ScriptError(txscripterr.ErrScriptTooBig, str)
		return b
	}

	// Pushes larger than the max script element size would result in a
	// script that is not canonical.
	if len(data) > params.MaxScriptElementSize {
		str := fmt.Sprintf("adding a data element of %d bytes would "+
			"exceed the maximum allowed script element size of %d",
			len(data), params.MaxScriptElementSize)
		b.err = txscripterr.ScriptError(txscripterr.ErrElementTooBig, str)
		return b
	}

	return b.addData(data)
}

// AddInt64 pushes the passed int64 to the end of the script. It
// automatically uses the smallest possible opcode, including OP_0 through
// OP_16 for the respective values 0 and 1 through 16, and using minimal
// encoding for any other values.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Pushes that would cause the script to exceed the largest allowed
	// script size would result in a non-canonical script.
	if len(b.script)+1 > params.MaxScriptSize {
		str := fmt.Sprintf("adding an integer would exceed the maximum "+
			"allowed canonical script length of %d", params.MaxScriptSize)
		b.err = txscripterr.ScriptError(txscripterr.ErrScriptTooBig, str)
		return b
	}

	// Fast path for small integers and OP_1NEGATE.
	if val == 0 {
		b.script = append(b.script, opcode.OP_0)
		return b
	}
	if val == -1 || (val >= 1 && val <= 16) {
		b.script = append(b.script, byte((opcode.OP_1-1)+val))
		return b
	}

	return b.AddData(scriptnum.ScriptNum(val).Bytes())
}

// Reset resets the script so it has no content.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[0:0]
	b.err = nil
	return b
}

// Script returns the currently built script. When any errors occurred while
// building the script, the script will be returned up to the point of the
// first error along with the error.
func (b *ScriptBuilder) Script() ([]byte, er.R) {
	return b.script, b.err
}

// NewScriptBuilder returns a new instance of a script builder. See
// ScriptBuilder for details.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		script: make([]byte, 0, defaultScriptAlloc),
	}
}
