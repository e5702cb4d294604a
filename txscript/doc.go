// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the bitcoin transaction script language.

This package provides data structures and functions to parse and execute
bitcoin transaction scripts.

Script Overview

Bitcoin transaction scripts are written in a stack-base, FORTH-like language.

The bitcoin script language consists of a number of opcodes which fall into
several categories such as pushing and popping data to and from the stack,
performing basic and bitwise arithmetic, conditional branching, comparing
hashes, and checking cryptographic signatures.  Scripts are processed from
left to right and intentionally do not provide loops.

The vast majority of Bitcoin scripts at the time of this writing are of
several standard forms which consist of a spender providing a public key and
a signature which proves the spender owns the associated private key.  This
information is used to prove the spender is authorized to perform the
transaction.

One benefit of using a scripting language is added flexibility in specifying
what conditions must be met in order to spend bitcoins.

Errors

Errors returned by this package are of type txscript.Error and fully support
the errors.As interface.  Each error carries an ErrorCode which identifies
the specific failure and may be grouped into a coarser failure class with
the Category method.
*/
package txscript
