/*
ragc-go - edit-on-write pseudo registers.

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

import "log/slog"

// Edit register addresses, octal.
const (
	EditCycleRight = 0o20
	EditShift      = 0o21
	EditCycleLeft  = 0o22
	EditOp         = 0o23
)

// EditRegisters implements the four magic addresses whose writes perform
// a cyclic or arithmetic shift; a later read returns the shifted value.
type EditRegisters struct {
	cycleRight uint16
	shift      uint16
	cycleLeft  uint16
	editOp     uint16
}

func NewEditRegisters() *EditRegisters {
	return &EditRegisters{}
}

func (e *EditRegisters) Reset() {
	*e = EditRegisters{}
}

func (e *EditRegisters) Read(addr int) uint16 {
	switch addr {
	case EditCycleLeft:
		return e.cycleLeft
	case EditCycleRight:
		return e.cycleRight
	case EditShift:
		return e.shift
	case EditOp:
		return e.editOp
	default:
		slog.Error("invalid edit register read", "addr", addr)
		return 0
	}
}

func (e *EditRegisters) Write(addr int, value uint16) {
	masked := value & 0x7FFF

	switch addr {
	case EditCycleLeft:
		sign := masked & 0x4000
		e.cycleLeft = (masked << 1) & 0x7FFF
		e.cycleLeft |= sign >> 14

	case EditCycleRight:
		low := masked & 0x1
		e.cycleRight = (masked >> 1) | (low << 14)

	case EditShift:
		sign := masked & 0o40000
		e.shift = (masked >> 1) | sign

	case EditOp:
		e.editOp = (masked >> 7) & 0o177

	default:
		slog.Error("invalid edit register write", "addr", addr)
	}
}
