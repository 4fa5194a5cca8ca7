/*
ragc-go - CPU register file and bank selection.

	Copyright (c) 2024, Richard Cornwell

	Permission is hereby granted, free of charge, to any person obtaining a
	copy of this software and associated documentation files (the "Software"),
	to deal in the Software without restriction, including without limitation
	the rights to use, copy, modify, merge, publish, distribute, sublicense,
	and/or sell copies of the Software, and to permit persons to whom the
	Software is furnished to do so, subject to the following conditions:

	The above copyright notice and this permission notice shall be included in
	all copies or substantial portions of the Software.

	THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
	IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
	FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
	RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
	IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
	CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/
package memory

// CPU register indices, octal addresses within 0o00-0o17.
const (
	RegAccumulator      = 0x0
	RegLink             = 0x1
	RegMultiplier       = 0x2
	RegReturn           = 0x2 // alias for RegMultiplier
	RegErasableBank     = 0x3
	RegFixedBank        = 0x4
	RegZero             = 0x5
	RegCounter          = 0x5 // alias for RegZero (program counter)
	RegCombinedBank     = 0x6
	RegNull             = 0x7
	RegAccumulatorBack  = 0x8
	RegBufferBack       = 0x9
	RegReturnBack       = 0xA
	RegErasableBankBack = 0xB
	RegFixedBankBack    = 0xC
	RegCounterBack      = 0xD
	RegCombinedBankBack = 0xE
	RegInstruction      = 0xF
	numRegisters        = 0x10
)

// Registers holds the CPU's register file and the bank-select latches it
// projects across three of those registers.
type Registers struct {
	regs         [numRegisters]uint16
	FixedBank    int
	ErasableBank int
}

func NewRegisters() *Registers {
	return &Registers{}
}

func (r *Registers) Reset() {
	r.regs = [numRegisters]uint16{}
	r.FixedBank = 0
	r.ErasableBank = 0
}

// refreshBankRegisters recomputes the erasable/fixed/combined bank
// registers from the single (ErasableBank, FixedBank) source of truth.
func (r *Registers) refreshBankRegisters() {
	erasableValue := uint16((r.ErasableBank & 0x7) << 8)
	fixedValue := uint16((r.FixedBank & 0x1F) << 10)
	combined := (erasableValue >> 8) | fixedValue

	r.regs[RegErasableBank] = erasableValue
	r.regs[RegFixedBank] = fixedValue
	r.regs[RegCombinedBank] = combined
}

func (r *Registers) Read(addr int) uint16 {
	switch addr {
	case RegAccumulator, RegMultiplier:
		return r.regs[addr]
	case RegZero:
		return r.regs[addr] & 0o7777
	case RegNull:
		return 0
	default:
		return r.regs[addr] & 0o77777
	}
}

func (r *Registers) Write(addr int, value uint16) {
	switch addr {
	case RegCombinedBank:
		r.ErasableBank = int(value & 0x7)
		r.FixedBank = int((value & 0x7C00) >> 10)
		r.refreshBankRegisters()
		return

	case RegFixedBank:
		r.FixedBank = int((value & 0x7C00) >> 10)
		r.refreshBankRegisters()
		return

	case RegErasableBank:
		r.ErasableBank = int((value & 0x0700) >> 8)
		r.refreshBankRegisters()
		return

	case RegZero:
		r.regs[addr] = value & 0o7777
		return

	case RegNull:
		return

	case RegAccumulator, RegMultiplier:
		r.regs[addr] = value

	default:
		r.regs[addr] = value & 0o77777
	}
}
