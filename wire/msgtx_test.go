// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// testTx returns a fully populated transaction for serialization tests.
func testTx() *MsgTx {
	prevHash := chainhash.DoubleHashH([]byte("prev"))
	tx := NewMsgTx(TxVersion)
	tx.AddTxIn(NewTxIn(NewOutPoint(&prevHash, 1),
		[]byte{0x51, 0x52}))
	tx.AddTxOut(NewTxOut(5000000000, []byte{
		0x76, 0xa9, 0x14, 0x43, 0x3e, 0xc2, 0xac, 0x1f, 0xfa, 0x1b,
		0x7b, 0x7d, 0x02, 0x7f, 0x56, 0x45, 0x29, 0xc5, 0x71, 0x97,
		0xf9, 0xae, 0x88, 0x88, 0xac,
	}))
	tx.LockTime = 42
	return tx
}

// TestTxSerialize tests that a transaction serializes and deserializes back
// to an equivalent transaction.
func TestTxSerialize(t *testing.T) {
	tx := testTx()

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	var decoded MsgTx
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if decoded.Version != tx.Version {
		t.Fatalf("version mismatch: %d != %d", decoded.Version, tx.Version)
	}
	if decoded.LockTime != tx.LockTime {
		t.Fatalf("locktime mismatch: %d != %d", decoded.LockTime, tx.LockTime)
	}
	if len(decoded.TxIn) != len(tx.TxIn) {
		t.Fatalf("input count mismatch: %d != %d", len(decoded.TxIn),
			len(tx.TxIn))
	}
	if decoded.TxIn[0].PreviousOutPoint != tx.TxIn[0].PreviousOutPoint {
		t.Fatalf("outpoint mismatch: %v != %v",
			decoded.TxIn[0].PreviousOutPoint,
			tx.TxIn[0].PreviousOutPoint)
	}
	if !bytes.Equal(decoded.TxIn[0].SignatureScript, tx.TxIn[0].SignatureScript) {
		t.Fatal("signature script mismatch")
	}
	if len(decoded.TxOut) != len(tx.TxOut) {
		t.Fatalf("output count mismatch: %d != %d", len(decoded.TxOut),
			len(tx.TxOut))
	}
	if decoded.TxOut[0].Value != tx.TxOut[0].Value {
		t.Fatalf("output value mismatch: %d != %d",
			decoded.TxOut[0].Value, tx.TxOut[0].Value)
	}
	if !bytes.Equal(decoded.TxOut[0].PkScript, tx.TxOut[0].PkScript) {
		t.Fatal("pk script mismatch")
	}

	// The hash must be stable across the round trip.
	if decoded.TxHash() != tx.TxHash() {
		t.Fatal("hash changed across serialization round trip")
	}
}

// TestTxCopy tests that copying a transaction yields a deep copy.
func TestTxCopy(t *testing.T) {
	tx := testTx()
	cp := tx.Copy()

	if tx.TxHash() != cp.TxHash() {
		t.Fatal("copy produced a different hash")
	}

	// Mutating the copy must not affect the original.
	cp.TxIn[0].SignatureScript[0] = 0x00
	cp.TxOut[0].PkScript[0] = 0x00
	if tx.TxIn[0].SignatureScript[0] == 0x00 {
		t.Fatal("copy shares signature script storage with original")
	}
	if tx.TxOut[0].PkScript[0] == 0x00 {
		t.Fatal("copy shares pk script storage with original")
	}
}

// TestTxOutPointString tests the human-readable form of an outpoint.
func TestTxOutPointString(t *testing.T) {
	prevHash := chainhash.DoubleHashH([]byte("prev"))
	outPoint := NewOutPoint(&prevHash, 3)
	want := prevHash.String() + ":3"
	if outPoint.String() != want {
		t.Fatalf("got %q, want %q", outPoint.String(), want)
	}
}

// TestTxDeserializeErrors ensures corrupt transaction encodings are rejected.
func TestTxDeserializeErrors(t *testing.T) {
	tx := testTx()
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	serialized := buf.Bytes()

	// Truncating the stream at any point must produce an error.
	for i := 0; i < len(serialized)-1; i++ {
		var decoded MsgTx
		if err := decoded.Deserialize(bytes.NewReader(serialized[:i])); err == nil {
			t.Fatalf("truncated tx at %d bytes did not error", i)
		}
	}
}
