/*
ragc-go - instruction decoder.

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
package decoder

import "errors"

// Mnemonic identifies a decoded AGC instruction.
type Mnemonic int

const (
	Invalid Mnemonic = iota
	AD
	ADS
	AUG
	BZF
	BZMF
	CA
	CS
	CCS
	DAS
	DCA
	DCS
	DIM
	DV
	DXCH
	EDRUPT
	EXTEND
	INCR
	INDEX
	INHINT
	LXCH
	MASK
	MP
	QXCH
	RAND
	READ
	RELINT
	RESUME
	ROR
	RXOR
	SU
	TC
	TCF
	TS
	WAND
	WOR
	WRITE
	XCH
)

const (
	dataMask     = 0o7777
	ramMask      = 0o1777
	opcodeMask   = 0o7
	opcodeOffset = 12
	extendBit    = 0o100000
)

var ErrInvalidExtrabits = errors.New("invalid extrabits encoding")

// ErrInvalidOpcode can only occur if the 3-bit opcode mask itself is wrong;
// kept as a defensive case mirroring the decoder it was modeled on.
var ErrInvalidOpcode = errors.New("invalid opcode size")

// Instruction is a decoded AGC instruction: the raw word plus whatever the
// decode table derived from it.
type Instruction struct {
	PC        uint16
	Data      uint16
	Mnem      Mnemonic
	Extrabits uint8
	HasExtra  bool
	MCT       uint8
}

func (i Instruction) GetOpcode() uint8 {
	return uint8((i.Data >> opcodeOffset) & opcodeMask)
}

// GetData returns the low 12-bit field (fixed-memory address or data).
func (i Instruction) GetData() uint16 {
	return i.Data & dataMask
}

// GetAddress returns the 12-bit field as an address.
func (i Instruction) GetAddress() int {
	return int(i.Data & dataMask)
}

// GetAddressRAM returns the 10-bit erasable-memory address field.
func (i Instruction) GetAddressRAM() int {
	return int(i.Data & ramMask)
}

func (i Instruction) IsExtended() bool {
	return i.Data&extendBit == extendBit
}

// Decode decodes one instruction word, fetched at pc, under the current
// EXTEND state (data bit 15 must already carry it — see cpu.CPU.calculateInstrData).
func Decode(pc, data uint16) (Instruction, error) {
	i := Instruction{PC: pc, Data: data, Mnem: Invalid, MCT: 1}
	if i.IsExtended() {
		return decodeExtended(i)
	}
	return decodeSimple(i)
}

func decodeExtended(i Instruction) (Instruction, error) {
	switch i.GetOpcode() {
	case 0:
		exb := uint8((i.Data & 0x0E00) >> 9)
		i.Extrabits, i.HasExtra = exb, true
		switch exb {
		case 0:
			i.Mnem = READ
		case 1:
			i.Mnem, i.MCT = WRITE, 2
		case 2:
			i.Mnem = RAND
		case 3:
			i.Mnem = WAND
		case 4:
			i.Mnem = ROR
		case 5:
			i.Mnem = WOR
		case 6:
			i.Mnem = RXOR
		case 7:
			i.Mnem = EDRUPT
		default:
			i.HasExtra = false
			return i, ErrInvalidExtrabits
		}
		return i, nil

	case 1:
		// Reserved tail: extrabits are captured but no mnemonic is
		// assigned, matching the decode table's "unassigned" entry.
		i.Extrabits, i.HasExtra = uint8((i.Data&0x0C00)>>10), true
		return i, nil

	case 2:
		exb := uint8((i.Data & 0x0C00) >> 10)
		i.Extrabits, i.HasExtra = exb, true
		switch exb {
		case 2:
			i.Mnem = AUG
		case 3:
			i.Mnem = DIM
		default:
			i.HasExtra = false
			return i, ErrInvalidExtrabits
		}
		return i, nil

	case 3:
		i.Mnem = DCA
	case 4:
		i.Mnem = DCS
	case 5:
		i.Mnem = INDEX

	case 6:
		exb := uint8((i.Data & 0x0C00) >> 10)
		i.Extrabits, i.HasExtra = exb, true
		if exb == 0 {
			i.Mnem = SU
		} else {
			i.Mnem = BZMF
		}

	case 7:
		i.Mnem = MP

	default:
		return i, ErrInvalidOpcode
	}

	return i, nil
}

func decodeSimple(i Instruction) (Instruction, error) {
	switch i.GetOpcode() {
	case 0:
		switch i.Data & 0xFFF {
		case 3:
			i.Mnem = RELINT
		case 4:
			i.Mnem = INHINT
		case 6:
			i.Mnem = EXTEND
		default:
			i.Mnem = TC
		}

	case 1:
		exb := uint8((i.Data & 0x0C00) >> 10)
		i.Extrabits, i.HasExtra = exb, true
		switch exb {
		case 0:
			i.Mnem = CCS
		case 1, 2, 3:
			i.Mnem = TCF
		default:
			i.HasExtra = false
			return i, ErrInvalidExtrabits
		}

	case 2:
		exb := uint8((i.Data & 0x0C00) >> 10)
		i.Extrabits, i.HasExtra = exb, true
		switch exb {
		case 0:
			i.Mnem = DAS
		case 1:
			i.Mnem = LXCH
		case 2:
			i.Mnem = INCR
		case 3:
			i.Mnem = ADS
		default:
			i.HasExtra = false
			return i, ErrInvalidExtrabits
		}

	case 3:
		i.Mnem, i.MCT = CA, 2

	case 4:
		i.Mnem, i.MCT = CS, 2

	case 5:
		exb := uint8((i.Data & 0x0C00) >> 10)
		i.Extrabits, i.HasExtra = exb, true
		switch exb {
		case 0:
			if i.Data&0o07777 == 0o00017 {
				i.Mnem = RESUME
			} else {
				i.Mnem = INDEX
			}
		case 1:
			i.Mnem = DXCH
		case 2:
			i.Mnem, i.MCT = TS, 2
		case 3:
			i.Mnem = XCH
		default:
			i.HasExtra = false
			return i, ErrInvalidExtrabits
		}

	case 6:
		i.Mnem, i.MCT = AD, 2

	case 7:
		i.Mnem = MASK

	default:
		return i, ErrInvalidOpcode
	}

	return i, nil
}
