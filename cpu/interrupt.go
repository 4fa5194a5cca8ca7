/*
ragc-go - AGC interrupt-control family: mask/unmask and return-from-interrupt.

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
package cpu

import "github.com/apollo-agc/ragc-go/decoder"

func (c *CPU) inhint(*decoder.Instruction) uint16 {
	c.GInt = false
	return 1
}

func (c *CPU) relint(*decoder.Instruction) uint16 {
	c.GInt = true
	return 1
}

// edrupt clears the global interrupt enable, the same effect as INHINT; it
// does not itself raise or dispatch an interrupt.
func (c *CPU) edrupt(*decoder.Instruction) uint16 {
	c.GInt = false
	return 3
}

// resume returns from an interrupt handler, restoring the saved PC and
// instruction register and re-enabling interrupts.
func (c *CPU) resume(*decoder.Instruction) uint16 {
	shadowPC := c.Read(regZBak) - 1
	c.Write(regZ, shadowPC)
	c.IR = c.Read(regIR)
	c.IdxVal = 0

	c.GInt = true
	c.IsIRupt = false

	return 2
}
