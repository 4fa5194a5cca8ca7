/*
ragc-go - AGC control-flow family: branches and the subroutine call.

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

import (
	"log/slog"

	"github.com/apollo-agc/ragc-go/decoder"
)

// bzf branches to the instruction's address field if the accumulator is
// ones'-complement zero (either +0 or -0).
func (c *CPU) bzf(cmd *decoder.Instruction) uint16 {
	c.ECFlag = false

	regAVal := c.Read(regA)
	switch regAVal {
	case 0, 0xFFFF:
		destination := cmd.GetData() & 0xFFF
		if destination&0xC00 == 0 {
			slog.Warn("BZF jumping to non-fixed memory")
		}
		c.Write(regZ, destination)
		c.IR = c.Read(int(destination))
		return 1
	default:
		return 2
	}
}

// bzmf branches if the accumulator is zero or negative, mirroring bzf's
// taken/not-taken cycle costs for the complementary sign test.
func (c *CPU) bzmf(cmd *decoder.Instruction) uint16 {
	c.ECFlag = false

	regAVal := c.Read(regA)
	isZero := regAVal == 0 || regAVal == 0xFFFF
	isNegative := regAVal&0xC000 == 0xC000
	if isZero || isNegative {
		destination := cmd.GetData() & 0xFFF
		if destination&0xC00 == 0 {
			slog.Warn("BZMF jumping to non-fixed memory")
		}
		c.Write(regZ, destination)
		c.IR = c.Read(int(destination))
		return 1
	}
	return 2
}

// tcf is an unconditional jump that clears EXTEND and never returns.
func (c *CPU) tcf(cmd *decoder.Instruction) uint16 {
	c.UpdatePC(cmd.GetData())
	c.ECFlag = false
	return 1
}

// tc is the subroutine call: jump and store the return address in Q.
func (c *CPU) tc(cmd *decoder.Instruction) uint16 {
	newPC := cmd.GetData()
	currentPC := c.Read(regZ)

	c.UpdatePC(newPC)
	c.Write(regQ, currentPC)
	c.ECFlag = false

	return 1
}
