// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// TstMaxScriptSize makes the internal maxScriptSize constant available to
// the test package.
const TstMaxScriptSize = maxScriptSize

// TstSetPC sets the current script and instruction offset of the passed
// engine to the provided values.  It is only exported for tests so they can
// exercise behavior around invalid program counters.
func (vm *Engine) TstSetPC(script, off int) {
	vm.scriptIdx = script
	vm.scriptOff = off
}
