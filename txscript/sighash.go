// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/hesperlabs/scriptvm/wire"
)

// SigHashType represents hash type bits at the end of a signature.
type SigHashType uint32

// Hash type bits from the end of a signature.
const (
	SigHashOld          SigHashType = 0x0
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	// sigHashMask defines the number of bits of the hash type which is
	// used to identify which outputs are signed.
	sigHashMask = 0x1f
)

// calcSignatureHash computes the signature hash for the specified input of
// the target transaction observing the desired signature hash type.
//
// This implements the original, pre-segwit algorithm: mask out the parts of
// the transaction the hash type says are not committed to, substitute the
// subscript (with any OP_CODESEPARATOR instances removed) into the input
// being signed, and double-SHA256 the result together with the hash type.
func calcSignatureHash(subScript []parsedOpcode, hashType SigHashType, tx *wire.MsgTx, idx int) ([]byte, error) {
	// The SigHashSingle signature type signs only the corresponding input
	// and output (the output with the same index number as the input).
	// Since transactions can have more inputs than outputs, this means it
	// is improper to use SigHashSingle on input indices that don't have a
	// corresponding output.
	//
	// A bug in the original Satoshi client means specifying an out-of-range
	// index for SigHashSingle results in a signature hash of the value one
	// (as a uint256 little-endian) rather than an error. That behavior is
	// now part of consensus and is reproduced here rather than fixed.
	if hashType&sigHashMask == SigHashSingle && idx >= len(tx.TxOut) {
		var hash chainhash.Hash
		hash[0] = 0x01
		return hash[:], nil
	}
	if idx < 0 || idx >= len(tx.TxIn) {
		return nil, scriptError(ErrInvalidIndex, fmt.Sprintf(
			"input index %d is negative or >= %d inputs", idx, len(tx.TxIn)))
	}

	// Remove all instances of OP_CODESEPARATOR from the subscript.
	subScript = removeOpcode(subScript, OP_CODESEPARATOR)

	// Make a deep copy of the transaction, blanking out the signature
	// script for every input except the one being signed, which is set to
	// the subscript.
	txCopy := tx.Copy()
	for i := range txCopy.TxIn {
		if i == idx {
			sigScript, err := unparseScript(subScript)
			if err != nil {
				return nil, err
			}
			txCopy.TxIn[idx].SignatureScript = sigScript
		} else {
			txCopy.TxIn[i].SignatureScript = nil
		}
	}

	switch hashType & sigHashMask {
	case SigHashNone:
		txCopy.TxOut = txCopy.TxOut[0:0]
		for i := range txCopy.TxIn {
			if i != idx {
				txCopy.TxIn[i].Sequence = 0
			}
		}

	case SigHashSingle:
		// Resize the output array to up to and including the
		// requested index, clearing out every output before it.
		txCopy.TxOut = txCopy.TxOut[:idx+1]
		for i := 0; i < idx; i++ {
			txCopy.TxOut[i].Value = -1
			txCopy.TxOut[i].PkScript = nil
		}
		for i := range txCopy.TxIn {
			if i != idx {
				txCopy.TxIn[i].Sequence = 0
			}
		}

	default:
		// Consensus treats undefined hash types like SigHashAll.
		fallthrough
	case SigHashOld, SigHashAll:
		// Nothing special here; commit to every input and output.
	}

	if hashType&SigHashAnyOneCanPay != 0 {
		txCopy.TxIn = txCopy.TxIn[idx : idx+1]
		idx = 0
	}

	var wbuf bytes.Buffer
	if err := txCopy.Serialize(&wbuf); err != nil {
		return nil, err
	}
	binary.Write(&wbuf, binary.LittleEndian, uint32(hashType))
	return chainhash.DoubleHashB(wbuf.Bytes()), nil
}

// CalcSignatureHash computes the signature hash for the specified input of
// the target transaction observing the desired signature hash type.
func CalcSignatureHash(script []byte, hashType SigHashType, tx *wire.MsgTx, idx int) ([]byte, error) {
	pops, err := parseScript(script)
	if err != nil {
		return nil, err
	}
	return calcSignatureHash(pops, hashType, tx, idx)
}
