// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"errors"
	"fmt"

	"github.com/hesperlabs/scriptvm/wire"
)

// VerifyScript executes the signature script of the indicated transaction
// input against the provided public key script and reports whether the input
// is authorized to spend the referenced output.
//
// The boolean result distinguishes "the scripts ran to completion but left a
// false value" (false, nil) from an actual failure such as a malformed
// script, an exceeded resource limit, or a policy violation under the passed
// flags, which is reported as (false, err).  The passed signature cache may
// be nil.
func VerifyScript(scriptPubKey []byte, tx *wire.MsgTx, txIdx int, flags ScriptFlags, sigCache *SigCache) (bool, error) {
	vm, err := NewEngine(scriptPubKey, tx, txIdx, flags, sigCache)
	if err != nil {
		return false, err
	}

	err = vm.Execute()
	if err == nil {
		return true, nil
	}

	// A script that ends with an empty stack or a false top stack entry
	// said "no"; it did not break.
	var serr Error
	if errors.As(err, &serr) {
		switch serr.ErrorCode {
		case ErrEvalFalse, ErrEmptyStack:
			return false, nil
		}
	}
	return false, err
}

// PublicKeyHash returns the 20-byte hash a standard pay-to-pubkey-hash or
// pay-to-script-hash script commits to.  For historical reasons a
// pay-to-pubkey-hash script with a single trailing OP_NOP is also accepted;
// such scripts exist in the chain and commit to the same hash.
func PublicKeyHash(script []byte) ([]byte, error) {
	pops, err := parseScript(script)
	if err != nil {
		return nil, err
	}

	// Trailing OP_NOP variant of pay-to-pubkey-hash.
	if len(pops) == 6 && pops[5].opcode.value == OP_NOP {
		pops = pops[:5]
	}

	switch {
	case isPubkeyHash(pops):
		return pops[2].data, nil
	case isScriptHash(pops):
		return pops[1].data, nil
	}

	str := fmt.Sprintf("script %x does not commit to a public key or "+
		"script hash", script)
	return nil, scriptError(ErrUnsupportedAddress, str)
}
