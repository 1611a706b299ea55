// Copyright (c) 2013-2022 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"

	"github.com/pkt-cash/pktscript/btcec"
	"github.com/pkt-cash/pktscript/btcutil/er"
	"github.com/pkt-cash/pktscript/chainhash"
	"github.com/pkt-cash/pktscript/txscript/opcode"
	"github.com/pkt-cash/pktscript/txscript/params"
	"github.com/pkt-cash/pktscript/txscript/parsescript"
	"github.com/pkt-cash/pktscript/txscript/txscripterr"
	"github.com/pkt-cash/pktscript/wire"
)

// ScriptFlags is a bitmask defining additional operations or tests that will
// be done during a script's execution in addition to the basic semantics of
// the scripting language. Each flag names a specific soft-fork or policy
// rule; absence of a flag means that rule is inactive.
type ScriptFlags uint32

const (
	// ScriptBip16 defines whether the bip16 threshold has passed and thus
	// pay-to-script hash transactions will be fully validated.
	ScriptBip16 ScriptFlags = 1 << iota

	// ScriptVerifyStrictEncoding defines that signature scripts and
	// public keys must follow the strict encoding requirements.
	ScriptVerifyStrictEncoding

	// ScriptVerifyDERSignatures defines that signatures are required to
	// compily with the DER format.
	ScriptVerifyDERSignatures

	// ScriptVerifyLowS defines that signatures are required to comply
	// with the DER format and whose S value is <= order / 2.
	ScriptVerifyLowS

	// ScriptVerifyMinimalData defines that signatures must use the
	// smallest push operator. This flag should never be used without
	// ScriptBip16, except for testing.
	ScriptVerifyMinimalData

	// ScriptDiscourageUpgradableNops defines whether to verify that
	// NOP1 through NOP10 are reserved for future soft-fork upgrades.
	ScriptDiscourageUpgradableNops

	// ScriptVerifyCleanStack defines that the stack must contain only
	// one stack element when evaluation finishes and that the element
	// must be true if interpreted as a boolean.
	ScriptVerifyCleanStack

	// ScriptVerifyCheckLockTimeVerify defines whether to allow execution
	// pathways of a script to be restricted based on the locktime.
	ScriptVerifyCheckLockTimeVerify

	// ScriptVerifyCheckSequenceVerify defines whether to allow execution
	// pathways of a script to be restricted based on the outpoint's age.
	ScriptVerifyCheckSequenceVerify

	// ScriptVerifyWitness defines whether or not to verify a transaction
	// output using the witness program template defined in BIP0141.
	ScriptVerifyWitness

	// ScriptVerifyDiscourageUpgradeableWitnessProgram defines whether or
	// not to consider a witness program version that isn't currently
	// known and implemented to be non-standard.
	ScriptVerifyDiscourageUpgradeableWitnessProgram

	// ScriptVerifyMinimalIf defines that a script MUST have an OP_IF or
	// OP_NOTIF operand that is an empty vector or [0x01].
	ScriptVerifyMinimalIf

	// ScriptVerifyWitnessPubKeyType makes a script containing a
	// non-compressed public key when evaluated under a witness program
	// fail.
	ScriptVerifyWitnessPubKeyType

	// ScriptVerifyNullFail defines that signatures must be empty if an
	// CHECKSIG or CHECKMULTISIG operation fails.
	ScriptVerifyNullFail

	// ScriptStrictMultiSig defines whether to verify the bitcoind-specific
	// extra dummy value that CHECKMULTISIG uses as an off-by-one bug
	// workaround is strictly required to be an OP_0.
	ScriptStrictMultiSig

	// ScriptVerifyTaproot defines whether the taproot/tapscript
	// consensus rules (BIP341/BIP342) apply: witness v1 programs are
	// interpreted as key-path or script-path spends instead of being
	// accepted unconditionally the way unknown witness versions are.
	ScriptVerifyTaproot

	// ScriptVerifyDiscourageUpgradableTaprootVersion defines whether a
	// tapscript leaf version other than the base version (0xc0) is
	// treated as non-standard rather than trivially valid.
	ScriptVerifyDiscourageUpgradableTaprootVersion
)

// StandardVerifyFlags are the script flags which are used when executing
// transaction scripts to enforce additional checks that are required for
// the script to be considered standard. These checks help reduce
// malleability and otherwise do not affect the correctness of the script
// execution.
var StandardVerifyFlags = ScriptBip16 |
	ScriptVerifyDERSignatures |
	ScriptVerifyStrictEncoding |
	ScriptVerifyMinimalData |
	ScriptStrictMultiSig |
	ScriptDiscourageUpgradableNops |
	ScriptVerifyCleanStack |
	ScriptVerifyNullFail |
	ScriptVerifyCheckLockTimeVerify |
	ScriptVerifyCheckSequenceVerify |
	ScriptVerifyLowS |
	ScriptVerifyWitness |
	ScriptVerifyDiscourageUpgradeableWitnessProgram |
	ScriptVerifyMinimalIf |
	ScriptVerifyWitnessPubKeyType |
	ScriptVerifyTaproot |
	ScriptVerifyDiscourageUpgradableTaprootVersion

// sigVersion identifies which signature hash algorithm and scriptCode rules
// govern the script currently executing.
type sigVersion int

const (
	sigVersionBase sigVersion = iota
	sigVersionWitnessV0
	sigVersionTaproot
	sigVersionTapscript
)

// tapscriptSigopBudgetBase implements the BIP342 sigops budget: 50 plus the
// serialized size in bytes of the input's witness, debited 50 for every
// executed CHECKSIG-family opcode that evaluates a non-empty signature.
const tapscriptSigopBudgetBase = 50

// Engine is the virtual machine that executes scripts. A single Engine
// evaluates exactly one (prevOutScript, input) pair; callers validating an
// entire transaction construct one Engine per input.
type Engine struct {
	// scripts holds every script that must be run in sequence to fully
	// validate the input: [sigScript, pkScript], with a P2SH redeem
	// script or a segwit witness/tapscript appended as they're
	// discovered.
	scripts   [][]parsescript.ParsedOpcode
	scriptIdx int
	scriptOff int

	lastCodeSep int
	hasCodeSep  bool
	numOps      int

	dstack stack
	astack stack

	condStack []int

	flags    ScriptFlags
	sigCache *SigCache

	tx    wire.MsgTx
	txIdx int

	prevOuts    []*wire.TxOut
	inputAmount int64
	hashCache   *TxSigHashes

	bip16           bool
	sigVer          sigVersion
	witnessProgram  []byte
	savedFirstStack [][]byte

	tapLeafHash     chainhash.Hash
	tapscriptBudget int
}

// hasFlag returns whether the script engine instance has the passed flag
// set.
func (vm *Engine) hasFlag(flag ScriptFlags) bool {
	return vm.flags&flag == flag
}

// isBranchExecuting returns true when the current conditional execution
// context is live, i.e. there is no pending OP_IF/OP_NOTIF whose
// corresponding branch was not taken.
func (vm *Engine) isBranchExecuting() bool {
	if len(vm.condStack) == 0 {
		return true
	}
	return vm.condStack[len(vm.condStack)-1] == OpCondTrue
}

// isWitnessVersionActive returns true if a witness program of the given
// version governs the script currently executing: version 0 for segwit v0,
// version 1 for taproot key-path or tapscript.
func (vm *Engine) isWitnessVersionActive(version int) bool {
	switch vm.sigVer {
	case sigVersionWitnessV0:
		return version == 0
	case sigVersionTaproot, sigVersionTapscript:
		return version == 1
	default:
		return false
	}
}

// subScript returns the script since the last OP_CODESEPARATOR.
func (vm *Engine) subScript() []parsescript.ParsedOpcode {
	script := vm.scripts[vm.scriptIdx]
	return script[vm.lastCodeSep:]
}

// checkHashTypeEncoding returns whether or not the passed hashtype adheres
// to the strict encoding requirements if enabled.
func (vm *Engine) checkHashTypeEncoding(hashType params.SigHashType) er.R {
	if !vm.hasFlag(ScriptVerifyStrictEncoding) {
		return nil
	}

	sigHashType := hashType &^ params.SigHashAnyOneCanPay
	if sigHashType == params.SigHashDefault &&
		(vm.sigVer == sigVersionTaproot || vm.sigVer == sigVersionTapscript) {
		return nil
	}
	if sigHashType < params.SigHashAll || sigHashType > params.SigHashSingle {
		str := "invalid hash type 0x%x"
		return txscripterr.ScriptError(txscripterr.ErrInvalidSigHashType, str)
	}
	return nil
}

// checkPubKeyEncoding returns whether or not the passed public key adheres
// to the strict encoding requirements if enabled.
func (vm *Engine) checkPubKeyEncoding(pubKey []byte) er.R {
	if vm.hasFlag(ScriptVerifyWitnessPubKeyType) &&
		vm.isWitnessVersionActive(0) && !btcec.IsCompressedPubKey(pubKey) {

		str := "only compressed keys are accepted post-segwit"
		return txscripterr.ScriptError(txscripterr.ErrWitnessPubKeyType, str)
	}

	if !vm.hasFlag(ScriptVerifyStrictEncoding) {
		return nil
	}

	if len(pubKey) == 33 && (pubKey[0] == 0x02 || pubKey[0] == 0x03) {
		return nil
	}
	if len(pubKey) == 65 && pubKey[0] == 0x04 {
		return nil
	}

	str := "unsupported public key type"
	return txscripterr.ScriptError(txscripterr.ErrPubKeyType, str)
}

// checkSignatureEncoding requires that a signature adhere to the strict DER
// encoding rules and, when ScriptVerifyLowS is set, have a low S value.
func (vm *Engine) checkSignatureEncoding(sig []byte) er.R {
	if len(sig) == 0 {
		return nil
	}

	if vm.hasFlag(ScriptVerifyDERSignatures) || vm.hasFlag(ScriptVerifyStrictEncoding) ||
		vm.hasFlag(ScriptVerifyLowS) {
		if err := btcec.CheckSignatureParseable(sig); err != nil {
			return txscripterr.ScriptError(txscripterr.ErrSigInvalidDataLen, err.Message())
		}
	}
	if vm.hasFlag(ScriptVerifyLowS) {
		if !btcec.SignatureHasLowS(sig) {
			str := "signature not signed with a low S value"
			return txscripterr.ScriptError(txscripterr.ErrSigHighS, str)
		}
	}
	return nil
}

// curScript returns the ParsedOpcode list currently executing.
func (vm *Engine) curScript() []parsescript.ParsedOpcode {
	return vm.scripts[vm.scriptIdx]
}

// checkScriptParses enforces the per-script opcode-count limit
// (MaxOpsPerScript, counting opcodes above OP_16) before execution begins;
// tapscript has no such limit. Push and script sizes are not checked here.
func checkScriptParses(pops []parsescript.ParsedOpcode, tapscript bool) er.R {
	if !tapscript {
		count := 0
		for _, pop := range pops {
			if pop.Opcode.Value > opcode.OP_16 {
				count++
			}
		}
		if count > params.MaxOpsPerScript {
			str := "script contains too many operations"
			return txscripterr.ScriptError(txscripterr.ErrTooManyOperations, str)
		}
	}
	return nil
}

// Execute runs the engine's scripts to completion, stage by stage (unlock
// script, lock script, and whatever P2SH/segwit/taproot follow-on scripts
// the templates above dictate), and reports whether the input is valid.
func (vm *Engine) Execute() er.R {
	for ; vm.scriptIdx < len(vm.scripts); vm.scriptIdx++ {
		if err := checkScriptParses(vm.scripts[vm.scriptIdx], vm.sigVer == sigVersionTapscript); err != nil {
			return err
		}

		if vm.scriptIdx == 1 && vm.savedFirstStack == nil {
			// About to run the public key script; remember the
			// post-sigScript stack for potential P2SH re-evaluation.
			vm.savedFirstStack = vm.getStack()
		}

		if err := vm.executeScript(); err != nil {
			return err
		}

		switch vm.scriptIdx {
		case 0:
			// Finished the unlock script; the data stack carries
			// forward into the lock script.
		case 1:
			if err := vm.checkStandardCompletion(); err != nil {
				return err
			}
			if err := vm.prepareP2SH(); err != nil {
				return err
			}
			if err := vm.prepareWitness(); err != nil {
				return err
			}
		default:
			if err := vm.checkStandardCompletion(); err != nil {
				return err
			}
		}
	}

	return vm.checkFinalState()
}

// executeScript runs every opcode of the current script in sequence.
func (vm *Engine) executeScript() er.R {
	script := vm.scripts[vm.scriptIdx]
	vm.lastCodeSep = 0
	vm.hasCodeSep = false
	vm.scriptOff = 0

	for vm.scriptOff < len(script) {
		pop := script[vm.scriptOff]

		executing := vm.isBranchExecuting()
		if !executing && !isConditionalOpcode(pop.Opcode.Value) {
			// Disabled opcodes still fail inside a non-executing
			// tapscript branch; in legacy/v0 they're transparent
			// no-ops when skipped, matching deployed consensus.
			if vm.sigVer == sigVersionTapscript && opcode.IsDisabled(pop.Opcode.Value) {
				str := "attempt to execute disabled opcode " + opcode.OpcodeName(pop.Opcode.Value)
				return txscripterr.ScriptError(txscripterr.ErrDisabledOpcode, str)
			}
			vm.scriptOff++
			continue
		}

		if executing && pop.Opcode.Value >= 0x00 && pop.Opcode.Value <= opcode.OP_PUSHDATA4 {
			if vm.hasFlag(ScriptVerifyMinimalData) && !canonicalPush(pop) {
				str := "not minimal data push"
				return txscripterr.ScriptError(txscripterr.ErrMinimalData, str)
			}
			if len(pop.Data) > params.MaxScriptElementSize {
				str := "element size exceeded max allowed size"
				return txscripterr.ScriptError(txscripterr.ErrElementTooBig, str)
			}
		}

		if executing && opcode.IsDisabled(pop.Opcode.Value) {
			str := "attempt to execute disabled opcode " + opcode.OpcodeName(pop.Opcode.Value)
			return txscripterr.ScriptError(txscripterr.ErrDisabledOpcode, str)
		}

		if executing && pop.Opcode.Value > opcode.OP_16 && vm.sigVer != sigVersionTapscript {
			vm.numOps++
			if vm.numOps > params.MaxOpsPerScript {
				str := "exceeded max operation limit"
				return txscripterr.ScriptError(txscripterr.ErrTooManyOperations, str)
			}
		}

		if err := executeOp(&pop, vm); err != nil {
			return err
		}

		if vm.dstack.Depth()+vm.astack.Depth() > params.MaxStackSize {
			str := "combined stack size exceeded max allowed size"
			return txscripterr.ScriptError(txscripterr.ErrStackOverflow, str)
		}

		vm.scriptOff++
	}

	if len(vm.condStack) != 0 {
		str := "end of script reached in conditional execution"
		return txscripterr.ScriptError(txscripterr.ErrUnbalancedConditional, str)
	}

	return nil
}

// isConditionalOpcode reports whether op must always run regardless of the
// surrounding branch state, because it manages that state itself.
func isConditionalOpcode(op byte) bool {
	switch op {
	case opcode.OP_IF, opcode.OP_NOTIF, opcode.OP_ELSE, opcode.OP_ENDIF:
		return true
	default:
		return false
	}
}

// checkStandardCompletion validates the result of a non-final script stage:
// it must have left a clean boolean-true top stack element to continue on
// to the next stage.
func (vm *Engine) checkStandardCompletion() er.R {
	if len(vm.condStack) != 0 {
		str := "end of script reached in conditional execution"
		return txscripterr.ScriptError(txscripterr.ErrUnbalancedConditional, str)
	}
	if vm.dstack.Depth() < 1 {
		str := "stack empty at end of script execution"
		return txscripterr.ScriptError(txscripterr.ErrEmptyStack, str)
	}
	v, err := vm.dstack.PeekBool(0)
	if err != nil {
		return err
	}
	if !v {
		str := "script evaluated without error but finished with a false stack entry"
		return txscripterr.ScriptError(txscripterr.ErrEvalFalse, str)
	}
	return nil
}

// getStack snapshots the current data stack, bottom first.
func (vm *Engine) getStack() [][]byte {
	out := make([][]byte, len(vm.dstack.stk))
	copy(out, vm.dstack.stk)
	return out
}

// setStack replaces the current data stack wholesale.
func (vm *Engine) setStack(data [][]byte) {
	vm.dstack.stk = make([][]byte, len(data))
	copy(vm.dstack.stk, data)
}

// prepareP2SH appends the redeem script as a new stage when the executed
// pkScript matched the BIP16 pay-to-script-hash template.
func (vm *Engine) prepareP2SH() er.R {
	if !vm.hasFlag(ScriptBip16) || !isScriptHash(vm.scripts[1]) {
		return nil
	}
	if !parsescript.IsPushOnly(vm.scripts[0]) {
		str := "signature script for p2sh is not push only"
		return txscripterr.ScriptError(txscripterr.ErrNotPushOnly, str)
	}

	first := vm.savedFirstStack
	if len(first) == 0 {
		str := "signature script for p2sh did not push anything"
		return txscripterr.ScriptError(txscripterr.ErrEvalFalse, str)
	}

	redeemScript := first[len(first)-1]
	pops, err := parsescript.ParseScript(redeemScript)
	if err != nil {
		return err
	}

	vm.bip16 = true
	vm.setStack(first[:len(first)-1])
	vm.scripts = append(vm.scripts, pops)
	return nil
}

// prepareWitness runs once the public key script has validated. It
// recognizes a segwit or taproot witness program in that script, or in the
// P2SH redeem script extracted by prepareP2SH, and arranges for the
// appropriate next stage. A P2SH-wrapped v0 program replaces the redeem
// script stage instead of running it.
func (vm *Engine) prepareWitness() er.R {
	if !vm.hasFlag(ScriptVerifyWitness) {
		return nil
	}

	witnessScript := vm.scripts[1]
	if vm.bip16 {
		witnessScript = vm.scripts[len(vm.scripts)-1]
	}
	if !isWitnessProgram(witnessScript) {
		return nil
	}

	version, program, err := ExtractWitnessProgramInfo(mustUnparse(witnessScript))
	if err != nil {
		return err
	}
	vm.witnessProgram = program

	witness := vm.tx.TxIn[vm.txIdx].Witness
	if len(witness) == 0 {
		str := "no witness data for witness program"
		return txscripterr.ScriptError(txscripterr.ErrWitnessProgramEmpty, str)
	}

	// A bare (non-P2SH) witness program requires an empty sigScript.
	if !vm.bip16 && len(vm.scripts[0]) != 0 {
		str := "non-empty sigScript for a native witness program"
		return txscripterr.ScriptError(txscripterr.ErrWitnessMalleated, str)
	}
	if vm.bip16 {
		redeemPops := vm.scripts[len(vm.scripts)-1]
		redeemScript, _ := unparseScript(redeemPops)
		sigPops := vm.scripts[0]
		if len(sigPops) != 1 || !bytes.Equal(sigPops[0].Data, redeemScript) {
			str := "sigScript for a p2sh-wrapped witness program must be " +
				"a single push of the redeem script"
			return txscripterr.ScriptError(txscripterr.ErrWitnessMalleatedP2SH, str)
		}
	}

	switch version {
	case 0:
		if vm.bip16 {
			// The redeem script is only the witness program; drop its
			// stage so the witness script runs on the witness stack.
			vm.scripts = vm.scripts[:len(vm.scripts)-1]
		}
		return vm.prepareWitnessV0(program, witness)
	case 1:
		if !vm.hasFlag(ScriptVerifyTaproot) {
			return nil
		}
		return vm.prepareTaproot(program, witness)
	default:
		if vm.hasFlag(ScriptVerifyDiscourageUpgradeableWitnessProgram) {
			str := "new witness program versions invalid for now"
			return txscripterr.ScriptError(txscripterr.ErrDiscourageUpgradableWitnessProgram, str)
		}
		// Unknown versions are anyone-can-spend; pop the remaining
		// stages so the engine simply reports success.
		vm.scripts = vm.scripts[:vm.scriptIdx+1]
		vm.setStack([][]byte{{1}})
		return nil
	}
}

func (vm *Engine) prepareWitnessV0(program []byte, witness wire.TxWitness) er.R {
	switch len(program) {
	case params.PayToWitnessPubKeyHashDataSize:
		if len(witness) != 2 {
			str := "a P2WKH witness program must only contain 2 items"
			return txscripterr.ScriptError(txscripterr.ErrWitnessProgramMismatch, str)
		}
		pkScript, err := payToPubKeyHashScript(program)
		if err != nil {
			return err
		}
		pops, err := parsescript.ParseScript(pkScript)
		if err != nil {
			return err
		}
		vm.setStack(witness)
		vm.scripts = append(vm.scripts, pops)

	case params.PayToWitnessScriptHashDataSize:
		if len(witness) == 0 {
			str := "P2WSH witness program empty"
			return txscripterr.ScriptError(txscripterr.ErrWitnessProgramEmpty, str)
		}
		witnessScript := witness[len(witness)-1]
		scriptHash := chainhash.HashB(witnessScript)
		if !bytes.Equal(scriptHash, program) {
			str := "witness program hash mismatch"
			return txscripterr.ScriptError(txscripterr.ErrWitnessProgramMismatch, str)
		}
		pops, err := parsescript.ParseScript(witnessScript)
		if err != nil {
			return err
		}
		vm.setStack(witness[:len(witness)-1])
		vm.scripts = append(vm.scripts, pops)

	default:
		str := "witness program has incorrect length"
		return txscripterr.ScriptError(txscripterr.ErrWitnessProgramWrongLength, str)
	}

	vm.sigVer = sigVersionWitnessV0
	return nil
}

func (vm *Engine) prepareTaproot(program []byte, witness wire.TxWitness) er.R {
	if len(program) != 32 {
		str := "witness v1 program must be 32 bytes"
		return txscripterr.ScriptError(txscripterr.ErrWitnessProgramWrongLength, str)
	}

	items := witness
	var annex []byte
	if len(items) >= 2 && len(items[len(items)-1]) > 0 && items[len(items)-1][0] == taprootAnnexTag {
		annex = items[len(items)-1]
		items = items[:len(items)-1]
	}

	if len(items) == 1 {
		// Key-path spend: verify directly and terminate; there is no
		// further script to run.
		sigBytes := items[0]
		valid, err := vm.verifyTaprootKeySpend(program, sigBytes, annex)
		if err != nil {
			return err
		}
		vm.scripts = vm.scripts[:vm.scriptIdx+1]
		if valid {
			vm.setStack([][]byte{{1}})
		} else {
			vm.setStack([][]byte{{}})
		}
		return nil
	}

	if len(items) < 2 {
		str := "script-path spend requires at least a script and control block"
		return txscripterr.ScriptError(txscripterr.ErrTaprootControlBlockInvalid, str)
	}

	control := items[len(items)-1]
	tapscript := items[len(items)-2]
	initialStack := items[:len(items)-2]

	cb, err := parseControlBlock(control)
	if err != nil {
		return err
	}
	if cb.leafVersion != taprootBaseLeafVersion && vm.hasFlag(ScriptVerifyDiscourageUpgradableTaprootVersion) {
		str := "undefined tapscript leaf version discouraged"
		return txscripterr.ScriptError(txscripterr.ErrDiscourageUpgradableNOPs, str)
	}

	leafHash := tapLeafHash(cb.leafVersion, tapscript)
	if err := verifyTaprootLeafCommitment(cb, leafHash, program); err != nil {
		return err
	}

	if cb.leafVersion != taprootBaseLeafVersion {
		// Unknown leaf versions are "OP_SUCCESS"-equivalent: the
		// commitment checked out, nothing more to validate.
		vm.scripts = vm.scripts[:vm.scriptIdx+1]
		vm.setStack([][]byte{{1}})
		return nil
	}

	pops, err := parsescript.ParseScript(tapscript)
	if err != nil {
		return err
	}

	vm.tapscriptBudget = tapscriptSigopBudgetBase + witness.SerializeSize()
	vm.tapLeafHash = leafHash
	vm.sigVer = sigVersionTapscript
	vm.setStack(initialStack)
	vm.scripts = append(vm.scripts, pops)
	return nil
}

// verifyTaprootKeySpend checks a taproot key-path Schnorr signature against
// the output key carried directly in the witness program.
func (vm *Engine) verifyTaprootKeySpend(program, sigBytes, annex []byte) (bool, er.R) {
	if len(sigBytes) != 64 && len(sigBytes) != 65 {
		str := "taproot key-path signature must be 64 or 65 bytes"
		return false, txscripterr.ScriptError(txscripterr.ErrTaprootSigInvalid, str)
	}

	hashType := params.SigHashDefault
	rawSig := sigBytes
	if len(sigBytes) == 65 {
		hashType = params.SigHashType(sigBytes[64])
		rawSig = sigBytes[:64]
	}
	if err := vm.checkHashTypeEncoding(hashType); err != nil {
		return false, err
	}

	sigHashes := vm.hashCache
	if sigHashes == nil || sigHashes.HashPrevOutsV1 == (chainhash.Hash{}) {
		var err er.R
		sigHashes, err = NewTxSigHashesV1(&vm.tx, vm.prevOuts)
		if err != nil {
			return false, err
		}
	}

	hash, err := CalcTaprootSignatureHash(sigHashes, hashType, &vm.tx, vm.txIdx, vm.prevOuts, annex, nil)
	if err != nil {
		return false, err
	}

	valid, verr := btcec.SchnorrVerify(rawSig, hash, program)
	if verr != nil {
		return false, nil
	}
	if !valid && vm.hasFlag(ScriptVerifyNullFail) && len(sigBytes) > 0 {
		str := "signature not empty on failed taproot checksig"
		return false, txscripterr.ScriptError(txscripterr.ErrNullFail, str)
	}
	return valid, nil
}

// checkFinalState validates the stack left behind by the last executed
// script stage against CleanStack and the final true/false result.
func (vm *Engine) checkFinalState() er.R {
	if len(vm.condStack) != 0 {
		str := "end of script reached in conditional execution"
		return txscripterr.ScriptError(txscripterr.ErrUnbalancedConditional, str)
	}

	if vm.dstack.Depth() < 1 {
		str := "stack empty at end of script execution"
		return txscripterr.ScriptError(txscripterr.ErrEmptyStack, str)
	}

	if vm.hasFlag(ScriptVerifyCleanStack) && vm.dstack.Depth() != 1 {
		str := "stack contains additional unexpected items"
		return txscripterr.ScriptError(txscripterr.ErrCleanStack, str)
	}

	v, err := vm.dstack.PeekBool(0)
	if err != nil {
		return err
	}
	if !v {
		str := "script evaluated without error but finished with a false stack entry"
		return txscripterr.ScriptError(txscripterr.ErrEvalFalse, str)
	}
	return nil
}

func mustUnparse(pops []parsescript.ParsedOpcode) []byte {
	b, _ := unparseScript(pops)
	return b
}

// NewEngine returns a new script engine for the provided public key script,
// transaction, and input index. It is capable of running further stages
// (P2SH, segwit, taproot) as they're discovered while executing sigScript
// and pkScript.
func NewEngine(pkScript []byte, tx *wire.MsgTx, txIdx int, flags ScriptFlags,
	sigCache *SigCache, hashCache *TxSigHashes, inputAmount int64, prevOuts []*wire.TxOut) (*Engine, er.R) {

	if txIdx < 0 || txIdx >= len(tx.TxIn) {
		str := "transaction input index out of bounds"
		return nil, txscripterr.ScriptError(txscripterr.ErrInvalidIndex, str)
	}

	sigScript := tx.TxIn[txIdx].SignatureScript
	if flags.hasBip16Checks() && !parsescript.IsPushOnly(mustParse(sigScript)) {
		// Non-push sigScripts are rejected outright once BIP16 is
		// active, since they could otherwise be used to spend a
		// P2SH output before its redeem script is known.
		if IsPayToScriptHash(pkScript) {
			str := "signature script for p2sh is not push only"
			return nil, txscripterr.ScriptError(txscripterr.ErrNotPushOnly, str)
		}
	}

	sigPops, err := parsescript.ParseScript(sigScript)
	if err != nil {
		return nil, err
	}
	pkPops, err := parsescript.ParseScript(pkScript)
	if err != nil {
		return nil, err
	}
	if len(pkScript) > params.MaxScriptSize || len(sigScript) > params.MaxScriptSize {
		str := "script is longer than the maximum allowed size"
		return nil, txscripterr.ScriptError(txscripterr.ErrScriptTooBig, str)
	}

	vm := &Engine{
		scripts:     [][]parsescript.ParsedOpcode{sigPops, pkPops},
		flags:       flags,
		sigCache:    sigCache,
		hashCache:   hashCache,
		tx:          *tx.ShallowCopy(),
		txIdx:       txIdx,
		inputAmount: inputAmount,
		prevOuts:    prevOuts,
		dstack:      stack{verifyMinimalData: flags.hasFlag(ScriptVerifyMinimalData)},
		astack:      stack{verifyMinimalData: flags.hasFlag(ScriptVerifyMinimalData)},
	}

	return vm, nil
}

func mustParse(script []byte) []parsescript.ParsedOpcode {
	pops, _ := parsescript.ParseScript(script)
	return pops
}

func (f ScriptFlags) hasFlag(flag ScriptFlags) bool {
	return f&flag == flag
}

func (f ScriptFlags) hasBip16Checks() bool {
	return f&ScriptBip16 == ScriptBip16
}
