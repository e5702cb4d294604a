// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

const (
	// ErrInternal is used for runtime errors outside the scope of script
	// execution itself, such as an opcode table entry with an unsupported
	// data length encoding.
	ErrInternal ErrorCode = iota

	// ErrInvalidFlags is returned when an invalid combination of flags
	// is passed to NewEngine.
	ErrInvalidFlags

	// ErrInvalidIndex is returned when the passed input index for the
	// provided transaction is out of range.
	ErrInvalidIndex

	// ErrUnsupportedAddress is returned by PublicKeyHash when a script is
	// not one of the recognized shapes that commit to a 20-byte hash.
	ErrUnsupportedAddress

	// ErrTooManyRequiredSigs is returned when a multisig script is
	// constructed that requires more signatures than the number of
	// public keys provided.
	ErrTooManyRequiredSigs

	// ErrEarlyReturn is returned when OP_RETURN is executed in the
	// script.
	ErrEarlyReturn

	// ErrEmptyStack is returned when the script evaluated without error,
	// but terminated with an empty top-level stack.
	ErrEmptyStack

	// ErrEvalFalse is returned when the script evaluated without error
	// but terminated with a false value on the top-level stack.
	ErrEvalFalse

	// ErrScriptUnfinished is returned when CheckErrorCondition is called
	// on a script that has not finished executing.
	ErrScriptUnfinished

	// ErrInvalidProgramCounter is returned when the program counter used
	// to step through a script is invalid.
	ErrInvalidProgramCounter

	// ErrScriptTooBig is returned if a script is larger than maxScriptSize.
	ErrScriptTooBig

	// ErrElementTooBig is returned if an element to be pushed to the
	// stack is over maxScriptElementSize.
	ErrElementTooBig

	// ErrTooManyOperations is returned if a script has more than
	// MaxOpsPerScript opcodes that do not push data.
	ErrTooManyOperations

	// ErrStackOverflow is returned when stack and altstack combined
	// depth is over the limit.
	ErrStackOverflow

	// ErrInvalidPubKeyCount is returned when the number of public keys
	// specified for a multisig is either negative or greater than
	// MaxPubKeysPerMultiSig.
	ErrInvalidPubKeyCount

	// ErrInvalidSignatureCount is returned when the number of signatures
	// specified for a multisig is either negative or greater than the
	// number of public keys.
	ErrInvalidSignatureCount

	// ErrNumberTooBig is returned when the argument for an opcode that
	// accepts an integer is larger than the supported maximum value.
	ErrNumberTooBig

	// ErrVerify is returned when OP_VERIFY encounters a false stack value.
	ErrVerify

	// ErrEqualVerify is an ErrVerify specialization for OP_EQUALVERIFY.
	ErrEqualVerify

	// ErrNumEqualVerify is an ErrVerify specialization for
	// OP_NUMEQUALVERIFY.
	ErrNumEqualVerify

	// ErrCheckSigVerify is an ErrVerify specialization for
	// OP_CHECKSIGVERIFY.
	ErrCheckSigVerify

	// ErrCheckMultiSigVerify is an ErrVerify specialization for
	// OP_CHECKMULTISIGVERIFY.
	ErrCheckMultiSigVerify

	// ErrDisabledOpcode is returned when a disabled opcode is
	// encountered in a script.
	ErrDisabledOpcode

	// ErrReservedOpcode is returned when an opcode marked as reserved
	// is encountered in a script.
	ErrReservedOpcode

	// ErrMalformedPush is returned when a data push opcode tries to push
	// more bytes than are left in the script.
	ErrMalformedPush

	// ErrInvalidStackOperation is returned when an opcode requires more
	// items on the stack than are present.
	ErrInvalidStackOperation

	// ErrUnbalancedConditional is returned when an OP_ELSE or OP_ENDIF
	// is encountered in a script without a matching OP_IF/OP_NOTIF, or
	// when a script ends with conditionals left unterminated.
	ErrUnbalancedConditional

	// ErrMinimalData is returned when StrictMinimalData is set and a
	// number on the stack is not minimally encoded.
	ErrMinimalData

	// ErrInvalidSigHashType is returned when a signature hash type is
	// not one of the recognized types.
	ErrInvalidSigHashType

	// ErrSigTooShort is returned when a signature is shorter than the
	// minimum valid DER encoding.
	ErrSigTooShort

	// ErrSigTooLong is returned when a signature is longer than the
	// maximum valid DER encoding.
	ErrSigTooLong

	// ErrSigInvalidSeqID is returned when a signature does not begin
	// with the ASN.1 sequence identifier.
	ErrSigInvalidSeqID

	// ErrSigInvalidDataLen is returned when a signature's length byte
	// does not match the actual number of remaining bytes.
	ErrSigInvalidDataLen

	// ErrSigMissingSTypeID identifies a signature that is missing the
	// ASN.1 integer identifier for S.  The DER checks in this package
	// report that condition as ErrSigInvalidSIntID, so no code path
	// returns this code.
	ErrSigMissingSTypeID

	// ErrSigMissingSLen identifies a signature that is missing the length
	// byte for S.  The DER checks in this package report that condition
	// as ErrSigInvalidDataLen, so no code path returns this code.
	ErrSigMissingSLen

	// ErrSigInvalidSLen identifies a signature whose length for S does
	// not match the actual length of the remaining data.  The DER checks
	// in this package report that condition as ErrSigInvalidDataLen, so
	// no code path returns this code.
	ErrSigInvalidSLen

	// ErrSigInvalidRIntID is returned when a signature is missing the
	// ASN.1 integer identifier for R.
	ErrSigInvalidRIntID

	// ErrSigZeroRLen is returned when a signature has an R length of
	// zero.
	ErrSigZeroRLen

	// ErrSigNegativeR is returned when a signature's R value is
	// negative.
	ErrSigNegativeR

	// ErrSigTooMuchRPadding is returned when a signature's R value has
	// more padding than is needed to prevent it from being interpreted
	// as negative.
	ErrSigTooMuchRPadding

	// ErrSigInvalidSIntID is returned when the second ASN.1 integer
	// identifier in a signature is missing.
	ErrSigInvalidSIntID

	// ErrSigZeroSLen is returned when a signature has an S length of
	// zero.
	ErrSigZeroSLen

	// ErrSigNegativeS is returned when a signature's S value is
	// negative.
	ErrSigNegativeS

	// ErrSigTooMuchSPadding is returned when a signature's S value has
	// more padding than is needed to prevent it from being interpreted
	// as negative.
	ErrSigTooMuchSPadding

	// ErrSigHighS is returned when StrictLowS is set and a signature's S
	// value is greater than the group half order.
	ErrSigHighS

	// ErrNotPushOnly is returned when a script that is required to only
	// push data contains a non-push opcode.
	ErrNotPushOnly

	// ErrSigNullDummy is returned when StrictMultiSig is set and the
	// extra dummy element consumed by OP_CHECKMULTISIG is not the empty
	// byte array.
	ErrSigNullDummy

	// ErrPubKeyType is returned when StrictEncoding is set and a public
	// key is not serialized in the compressed or uncompressed format.
	ErrPubKeyType

	// ErrCleanStack is returned when CleanStack is set and more than one
	// item is left on the stack after execution.
	ErrCleanStack

	// ErrNullFail identifies a signature that does not validate and is
	// not the empty byte array.  No opcode in this package checks for
	// that condition, so no code path returns this code.
	ErrNullFail

	// ErrDiscourageUpgradableNOPs is returned when DiscourageUpgradableNops
	// is set and an OP_NOP1 through OP_NOP10 is executed.
	ErrDiscourageUpgradableNOPs

	// numErrorCodes is the maximum error code number used in tests to
	// ensure the total number of error codes doesn't drift from the
	// stringer map below without notice.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:                 "ErrInternal",
	ErrInvalidFlags:             "ErrInvalidFlags",
	ErrInvalidIndex:             "ErrInvalidIndex",
	ErrUnsupportedAddress:       "ErrUnsupportedAddress",
	ErrTooManyRequiredSigs:      "ErrTooManyRequiredSigs",
	ErrEarlyReturn:              "ErrEarlyReturn",
	ErrEmptyStack:               "ErrEmptyStack",
	ErrEvalFalse:                "ErrEvalFalse",
	ErrScriptUnfinished:         "ErrScriptUnfinished",
	ErrInvalidProgramCounter:    "ErrInvalidProgramCounter",
	ErrScriptTooBig:             "ErrScriptTooBig",
	ErrElementTooBig:            "ErrElementTooBig",
	ErrTooManyOperations:        "ErrTooManyOperations",
	ErrStackOverflow:            "ErrStackOverflow",
	ErrInvalidPubKeyCount:       "ErrInvalidPubKeyCount",
	ErrInvalidSignatureCount:    "ErrInvalidSignatureCount",
	ErrNumberTooBig:             "ErrNumberTooBig",
	ErrVerify:                   "ErrVerify",
	ErrEqualVerify:              "ErrEqualVerify",
	ErrNumEqualVerify:           "ErrNumEqualVerify",
	ErrCheckSigVerify:           "ErrCheckSigVerify",
	ErrCheckMultiSigVerify:      "ErrCheckMultiSigVerify",
	ErrDisabledOpcode:           "ErrDisabledOpcode",
	ErrReservedOpcode:           "ErrReservedOpcode",
	ErrMalformedPush:            "ErrMalformedPush",
	ErrInvalidStackOperation:    "ErrInvalidStackOperation",
	ErrUnbalancedConditional:    "ErrUnbalancedConditional",
	ErrMinimalData:              "ErrMinimalData",
	ErrInvalidSigHashType:       "ErrInvalidSigHashType",
	ErrSigTooShort:              "ErrSigTooShort",
	ErrSigTooLong:               "ErrSigTooLong",
	ErrSigInvalidSeqID:          "ErrSigInvalidSeqID",
	ErrSigInvalidDataLen:        "ErrSigInvalidDataLen",
	ErrSigMissingSTypeID:        "ErrSigMissingSTypeID",
	ErrSigMissingSLen:           "ErrSigMissingSLen",
	ErrSigInvalidSLen:           "ErrSigInvalidSLen",
	ErrSigInvalidRIntID:         "ErrSigInvalidRIntID",
	ErrSigZeroRLen:              "ErrSigZeroRLen",
	ErrSigNegativeR:             "ErrSigNegativeR",
	ErrSigTooMuchRPadding:       "ErrSigTooMuchRPadding",
	ErrSigInvalidSIntID:         "ErrSigInvalidSIntID",
	ErrSigZeroSLen:              "ErrSigZeroSLen",
	ErrSigNegativeS:             "ErrSigNegativeS",
	ErrSigTooMuchSPadding:       "ErrSigTooMuchSPadding",
	ErrSigHighS:                 "ErrSigHighS",
	ErrNotPushOnly:              "ErrNotPushOnly",
	ErrSigNullDummy:             "ErrSigNullDummy",
	ErrPubKeyType:               "ErrPubKeyType",
	ErrCleanStack:               "ErrCleanStack",
	ErrNullFail:                 "ErrNullFail",
	ErrDiscourageUpgradableNOPs: "ErrDiscourageUpgradableNOPs",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Category groups ErrorCodes into the four failure classes used to decide
// how a caller should react to a verification failure: a malformed byte
// stream, a non-consensus policy rule, a consensus-level execution failure,
// or a malformed signature/pubkey encoding.
type Category string

const (
	CategoryParse             Category = "parse"
	CategoryPolicy            Category = "policy"
	CategoryExec              Category = "exec"
	CategorySignatureEncoding Category = "signature-encoding"
)

// Category classifies the receiver into one of the four error classes.
func (e ErrorCode) Category() Category {
	switch e {
	case ErrScriptTooBig, ErrMalformedPush:
		return CategoryParse

	case ErrElementTooBig, ErrTooManyOperations, ErrNotPushOnly,
		ErrMinimalData, ErrDiscourageUpgradableNOPs, ErrCleanStack:
		return CategoryPolicy

	case ErrInvalidSigHashType, ErrSigTooShort, ErrSigTooLong,
		ErrSigInvalidSeqID, ErrSigInvalidDataLen, ErrSigMissingSTypeID,
		ErrSigMissingSLen, ErrSigInvalidSLen, ErrSigInvalidRIntID,
		ErrSigZeroRLen, ErrSigNegativeR, ErrSigTooMuchRPadding,
		ErrSigInvalidSIntID, ErrSigZeroSLen, ErrSigNegativeS,
		ErrSigTooMuchSPadding, ErrSigHighS, ErrSigNullDummy,
		ErrPubKeyType, ErrNullFail:
		return CategorySignatureEncoding

	default:
		return CategoryExec
	}
}

// Error identifies a script-related error.  It carries both a coarse
// ErrorCode, for callers that want to switch on the kind of failure, and a
// human-readable Description of the specific condition encountered.
//
// Note that Engine.Execute reports a script that simply evaluates to false
// as an Error with ErrEvalFalse or ErrEmptyStack.  VerifyScript maps those
// two codes to a plain (false, nil) so callers can't mistake "the script
// said no" for "the script was broken".
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var serr Error
	if errors.As(err, &serr) {
		return serr.ErrorCode == c
	}
	return false
}
