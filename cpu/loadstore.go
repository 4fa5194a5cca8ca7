/*
ragc-go - AGC load/store family: clear-and-add/subtract, exchanges, and the
sign-testing and indexing instructions the original coverage left out.

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
	"github.com/apollo-agc/ragc-go/agcmath"
	"github.com/apollo-agc/ragc-go/decoder"
)

// cs loads the ones'-complement of memory into the accumulator.
func (c *CPU) cs(cmd *decoder.Instruction) uint16 {
	location := cmd.GetAddress()
	inverted := (^c.ReadS16(location)) & 0xFFFF
	c.WriteS16(regA, inverted)
	c.checkEditing(location)
	return 2
}

// ca loads memory into the accumulator.
func (c *CPU) ca(cmd *decoder.Instruction) uint16 {
	source := cmd.GetAddress()
	c.WriteS16(regA, c.ReadS16(source))
	c.checkEditing(source)
	return 2
}

// dcs loads the ones'-complement of a double-precision operand into A:L;
// the address field names the low word, the high word sits one below it.
func (c *CPU) dcs(cmd *decoder.Instruction) uint16 {
	base := cmd.GetAddress() - 1

	negLow := (^c.ReadS16(base + 1)) & 0xFFFF
	c.Write(regL, negLow)

	negHigh := (^c.ReadS16(base)) & 0xFFFF
	c.Write(regA, negHigh)

	c.checkEditing(base + 1)
	c.checkEditing(base)
	return 3
}

// dca loads a double-precision operand into A:L.
func (c *CPU) dca(cmd *decoder.Instruction) uint16 {
	base := cmd.GetAddress() - 1

	low := c.ReadS16(base + 1)
	c.WriteS16(regL, low)

	high := c.ReadS16(base)
	c.WriteS16(regA, high)

	c.checkEditing(base + 1)
	c.checkEditing(base)
	return 3
}

// lxch exchanges L with memory.
func (c *CPU) lxch(cmd *decoder.Instruction) uint16 {
	addr := cmd.GetAddressRAM()

	l := c.ReadS16(regL)
	mem := c.ReadS16(addr)

	c.WriteS16(regL, mem)
	c.WriteS16(addr, l)
	return 2
}

// qxch exchanges Q (the return register) with memory. Never produced by
// the decoder - Block II hardware routes subroutine returns through TC
// instead - kept for parity with the instruction set it names.
func (c *CPU) qxch(cmd *decoder.Instruction) uint16 {
	addr := cmd.GetAddressRAM()

	mem := c.ReadS16(addr)
	q := c.ReadS16(regQ)

	c.WriteS16(addr, q)
	c.WriteS16(regQ, mem)
	return 2
}

// xch exchanges the accumulator with memory, overflow-adjusting the value
// that lands in storage.
func (c *CPU) xch(cmd *decoder.Instruction) uint16 {
	addr := cmd.GetAddressRAM()

	mem := c.ReadS16(addr)
	a := c.ReadS16(regA)

	c.WriteS16(addr, agcmath.AdjustOverflow(a))
	c.WriteS16(regA, mem)
	return 2
}

// mask ANDs memory into the accumulator.
func (c *CPU) mask(cmd *decoder.Instruction) uint16 {
	addr := cmd.GetAddress()
	a := c.ReadS16(regA)
	m := c.ReadS16(addr)
	c.WriteS16(regA, a&m)
	c.checkEditing(addr)
	return 2
}

// ccs tests the sign class of memory, loads its magnitude minus one into
// the accumulator, and skips ahead by the class's fixed count: no skip for
// positive, one for +0, two for negative, three for -0.
func (c *CPU) ccs(cmd *decoder.Instruction) uint16 {
	addr := cmd.GetAddress()
	v := c.ReadS15(addr)
	pc := c.Read(regZ)

	switch {
	case v == 0:
		c.WriteS15(regA, 0)
		c.UpdatePC(pc + 1)
	case v == 0o77777:
		c.WriteS15(regA, 0)
		c.UpdatePC(pc + 3)
	case v&0o40000 != 0:
		mag := (^v) & 0o37777
		c.WriteS15(regA, mag-1)
		c.UpdatePC(pc + 2)
	default:
		c.WriteS15(regA, v-1)
	}
	return 2
}

// aug increments a memory cell's magnitude by one in the direction away
// from zero: the mirror image of dim.
func (c *CPU) aug(cmd *decoder.Instruction) uint16 {
	addr := cmd.GetAddressRAM()
	val := c.ReadS16(addr)

	switch val {
	case 0:
		c.WriteS16(addr, 1)
	case 0o177777:
		c.WriteS16(addr, 0o177776)
	default:
		if val&0o40000 != 0 {
			c.WriteS16(addr, val-1)
		} else {
			c.WriteS16(addr, val+1)
		}
	}
	return 2
}

// das adds the double-precision accumulator/L pair into a two-word memory
// operand, stores the sum back, and clears A and L.
func (c *CPU) das(cmd *decoder.Instruction) uint16 {
	base := cmd.GetAddress() - 1

	opnd := c.ReadDP(base)
	acc := c.ReadDP(regA)
	sum := agcmath.AddDP29(opnd, acc)
	c.WriteDP(base, sum)

	c.WriteS15(regA, 0)
	c.WriteS15(regL, 0)

	c.checkEditing(base + 1)
	c.checkEditing(base)
	return 3
}

// dxch exchanges the double-precision accumulator/L pair with a two-word
// memory operand.
func (c *CPU) dxch(cmd *decoder.Instruction) uint16 {
	base := cmd.GetAddress() - 1

	memHigh := c.ReadS16(base)
	memLow := c.ReadS16(base + 1)
	accHigh := c.ReadS16(regA)
	accLow := c.ReadS16(regL)

	c.WriteS16(base, accHigh)
	c.WriteS16(base+1, accLow)
	c.WriteS16(regA, memHigh)
	c.WriteS16(regL, memLow)

	c.checkEditing(base)
	c.checkEditing(base + 1)
	return 3
}

// ts stores the accumulator's low 15 bits into memory. An overflowed
// accumulator instead gets set to a unit value of the overflow's sign and
// the program counter skips the next instruction, the standard AGC
// overflow-sensing idiom.
func (c *CPU) ts(cmd *decoder.Instruction) uint16 {
	addr := cmd.GetAddressRAM()
	a := c.Read(regA)

	c.WriteS15(addr, agcmath.AdjustOverflow(a)&0x7FFF)

	switch a & 0xC000 {
	case 0x8000:
		c.WriteS15(regA, 0o77776)
		pc := c.Read(regZ)
		c.UpdatePC(pc + 1)
	case 0x4000:
		c.WriteS15(regA, 1)
		pc := c.Read(regZ)
		c.UpdatePC(pc + 1)
	}
	return 2
}

// index folds the addressed word into the index register, to be added
// into the next instruction's address field on its fetch.
func (c *CPU) index(cmd *decoder.Instruction) uint16 {
	c.IdxVal = c.ReadS15(cmd.GetAddress())
	return 1
}
