// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// scriptcheck is a small utility for working with raw transaction scripts.
// It disassembles the provided hex encoded scripts and, unless disabled,
// executes the signature script against the public key script the same way
// a node validates a transaction input and reports the result.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"github.com/hesperlabs/scriptvm/txscript"
	"github.com/hesperlabs/scriptvm/wire"
)

// config defines the configuration options for scriptcheck.
type config struct {
	SigScript   string `short:"s" long:"sigscript" description:"Hex encoded signature script"`
	PkScript    string `short:"p" long:"pkscript" description:"Hex encoded public key script" required:"true"`
	DisasmOnly  bool   `short:"d" long:"disasm" description:"Only disassemble the scripts, do not execute them"`
	NoP2SH      bool   `long:"nop2sh" description:"Do not apply the pay-to-script-hash evaluation rule"`
	PushOnly    bool   `long:"sigpushonly" description:"Require the signature script to only contain pushed data"`
	MinimalData bool   `long:"minimaldata" description:"Require all data pushes to use the minimal encoding"`
	StrictEnc   bool   `long:"strictenc" description:"Require signatures and public keys to be strictly encoded"`
	NullDummy   bool   `long:"nulldummy" description:"Require the extra multisig stack item to be empty"`
	Trace       bool   `short:"t" long:"trace" description:"Dump an execution trace of the script engine to stderr"`
}

// scriptFlags converts the relevant config options into the flag set used by
// the script engine.
func (cfg *config) scriptFlags() txscript.ScriptFlags {
	var scriptFlags txscript.ScriptFlags
	if !cfg.NoP2SH {
		scriptFlags |= txscript.ScriptBip16
	}
	if cfg.PushOnly {
		scriptFlags |= txscript.ScriptVerifySigPushOnly
	}
	if cfg.MinimalData {
		scriptFlags |= txscript.ScriptVerifyMinimalData
	}
	if cfg.StrictEnc {
		scriptFlags |= txscript.ScriptVerifyStrictEncoding
	}
	if cfg.NullDummy {
		scriptFlags |= txscript.ScriptStrictMultiSig
	}
	return scriptFlags
}

// spendingTx returns a transaction that spends a fake output guarded by the
// passed public key script with the passed signature script, mirroring the
// shape real transactions have so signature checking opcodes can derive a
// signing hash.
func spendingTx(sigScript, pkScript []byte) *wire.MsgTx {
	coinbaseTx := wire.NewMsgTx(wire.TxVersion)
	outPoint := wire.NewOutPoint(&chainhash.Hash{}, ^uint32(0))
	coinbaseTx.AddTxIn(wire.NewTxIn(outPoint, []byte{txscript.OP_0, txscript.OP_0}))
	coinbaseTx.AddTxOut(wire.NewTxOut(0, pkScript))

	spendTx := wire.NewMsgTx(wire.TxVersion)
	coinbaseTxHash := coinbaseTx.TxHash()
	spendTx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&coinbaseTxHash, 0),
		sigScript))
	spendTx.AddTxOut(wire.NewTxOut(0, nil))
	return spendTx
}

func realMain() error {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	sigScript, err := hex.DecodeString(cfg.SigScript)
	if err != nil {
		return fmt.Errorf("invalid signature script hex: %v", err)
	}
	pkScript, err := hex.DecodeString(cfg.PkScript)
	if err != nil {
		return fmt.Errorf("invalid public key script hex: %v", err)
	}

	sigDisasm, err := txscript.DisasmString(sigScript)
	if err != nil {
		return fmt.Errorf("signature script does not parse: %v", err)
	}
	pkDisasm, err := txscript.DisasmString(pkScript)
	if err != nil {
		return fmt.Errorf("public key script does not parse: %v", err)
	}
	fmt.Println("sigscript:", sigDisasm)
	fmt.Println("pkscript: ", pkDisasm)

	class := txscript.GetScriptClass(pkScript)
	fmt.Println("class:    ", class)
	if class == txscript.PubKeyHashTy || class == txscript.ScriptHashTy {
		hash, err := txscript.PublicKeyHash(pkScript)
		if err == nil {
			fmt.Printf("hash:      %x\n", hash)
		}
	}

	if cfg.DisasmOnly {
		return nil
	}

	if cfg.Trace {
		backend := btclog.NewBackend(os.Stderr)
		logger := backend.Logger("SCRP")
		logger.SetLevel(btclog.LevelTrace)
		txscript.UseLogger(logger)
	}

	tx := spendingTx(sigScript, pkScript)
	ok, err := txscript.VerifyScript(pkScript, tx, 0, cfg.scriptFlags(), nil)
	if err != nil {
		return fmt.Errorf("script failed: %v", err)
	}
	if !ok {
		return fmt.Errorf("script result is false")
	}
	fmt.Println("result:    true")
	return nil
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
