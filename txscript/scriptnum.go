// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

const (
	// defaultScriptNumLen is the default number of bytes data being
	// interpreted as an integer may be.
	defaultScriptNumLen = 4

	// maxInt32 is the maximum value representable as a signed 32-bit
	// integer, used to clamp scriptNum.Int32 results.
	maxInt32 = 1<<31 - 1

	// minInt32 is the minimum value representable as a signed 32-bit
	// integer, used to clamp scriptNum.Int32 results.
	minInt32 = -1 << 31
)

// scriptNum represents a numeric value used in the scripting engine with
// special handling to deal with the subtle semantics required by
// consensus.
//
// All numbers are stored on the data and alt stacks as an array of bytes
// with the encoding matching the format used by Bitcoin's OpenSSL bignum
// routines used in the original reference client: a little-endian
// representation of the magnitude with the high bit of the last byte
// encoding the sign.  Bytes always produces the minimal encoding, but
// makeScriptNum accepts non-minimal encodings unless minimal encoding is
// required, so some values (notably zero, which also reads from negative
// zero, 0x80) can be represented in more than one way.
type scriptNum int64

// checkMinimalDataEncoding returns whether the passed byte array adheres to
// the minimal encoding requirements.
func checkMinimalDataEncoding(v []byte) error {
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
		// conflict with the sign bit, so a single zero byte is
		// required in that case.
		if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
			str := fmt.Sprintf("numeric value encoded as %x is not minimally encoded", v)
			return scriptError(ErrMinimalData, str)
		}
	}

	return nil
}

// makeScriptNum interprets the passed serialized bytes as an encoded
// script number, returning the resulting script number.
//
// Since the consensus rules dictate that serialized bignums may not exceed
// numLen bytes and the existing implementation used both 4 bytes and 8
// bytes, numLen is parameterized here to allow both forms.
//
// If verifyMinimalEncoding is true, then additional checks are performed
// to ensure the number is minimally encoded as per the rules dictated by
// the consensus rules, and will return an error if it is not.
func makeScriptNum(v []byte, verifyMinimalEncoding bool, numLen int) (scriptNum, error) {
	if len(v) > numLen {
		str := fmt.Sprintf("numeric value encoded as %x is %d bytes "+
			"which exceeds the max allowed of %d", v, len(v), numLen)
		return 0, scriptError(ErrNumberTooBig, str)
	}

	if verifyMinimalEncoding {
		if err := checkMinimalDataEncoding(v); err != nil {
			return 0, err
		}
	}

	if len(v) == 0 {
		return 0, nil
	}

	var result int64
	for i, b := range v {
		result |= int64(b) << uint8(8*i)
	}

	if v[len(v)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint8(8*(len(v)-1)))
		return scriptNum(-result), nil
	}

	return scriptNum(result), nil
}

// Bytes returns the number serialized as a little endian with a sign bit.
//
// Example encodings:
//
//	   127 -> [0x7f]
//	  -127 -> [0xff]
//	   128 -> [0x80 0x00]
//	  -128 -> [0x80 0x80]
//	   129 -> [0x81 0x00]
//	  -129 -> [0x81 0x80]
//	   256 -> [0x00 0x01]
//	  -256 -> [0x00 0x81]
//	 32768 -> [0x00 0x80 0x00]
//	-32768 -> [0x00 0x80 0x80]
func (n scriptNum) Bytes() []byte {
	if n == 0 {
		return nil
	}

	isNegative := n < 0
	if isNegative {
		n = -n
	}

	result := make([]byte, 0, 9)
	for n > 0 {
		result = append(result, byte(n&0xff))
		n >>= 8
	}

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

// Int32 returns the script number clamped to a valid int32.  That is to
// say, when the script number is higher than the max allowed int32, the
// max int32 value is returned, and vice versa for the minimum value, along
// the same rules that Bitcoin Core and its derivatives apply to numeric
// opcodes.
func (n scriptNum) Int32() int32 {
	if n > maxInt32 {
		return maxInt32
	}
	if n < minInt32 {
		return minInt32
	}
	return int32(n)
}
