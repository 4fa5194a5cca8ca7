/*
ragc-go - AGC arithmetic family: ones'-complement add/subtract/multiply/divide.

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

// ad adds memory into the accumulator with end-around carry.
func (c *CPU) ad(cmd *decoder.Instruction) uint16 {
	a := uint32(c.ReadS16(regA))
	b := uint32(c.ReadS16(cmd.GetAddress()))

	ce := a + b
	if ce&0xFFFF0000 != 0 {
		ce++
	}

	c.WriteS16(regA, uint16(ce&0xFFFF))
	c.checkEditing(cmd.GetAddress())
	return 2
}

// ads adds the accumulator into storage, leaving the sum in both.
func (c *CPU) ads(cmd *decoder.Instruction) uint16 {
	x := uint32(c.ReadS16(regA))
	y := uint32(c.ReadS16(cmd.GetAddressRAM()))

	z := x + y
	if z&0xFFFF0000 != 0 {
		z++
	}

	res := uint16(z & 0xFFFF)
	c.WriteS16(regA, res)
	c.WriteS16(cmd.GetAddressRAM(), res)
	return 2
}

// mp multiplies the accumulator by memory, producing a double-precision
// product in A:L via sign/magnitude decomposition.
func (c *CPU) mp(cmd *decoder.Instruction) uint16 {
	val1 := c.ReadS15(regA)
	s1 := val1 & 0o40000
	mag1 := val1 & 0o37777
	if s1 != 0 {
		mag1 = (^val1) & 0o37777
	}

	val2 := c.ReadS15(cmd.GetAddress())
	s2 := val2 & 0o40000
	mag2 := val2 & 0o37777
	if s2 != 0 {
		mag2 = (^val2) & 0o37777
	}

	output := (uint32(mag1) * uint32(mag2)) & 0o1777777777
	if s2 != s1 {
		switch output {
		case 0o0000000000, 0o1777777777:
			if (mag1 | mag2) == 0 {
				output = 0
			} else {
				output = 0o3777777777
			}
		default:
			output = (^output) & 0o3777777777
		}
	}
	c.WriteDP(regA, output)
	return 3
}

// incr circularly increments a register, 16 bits wide for the
// accumulator/multiplier and 15 bits for everything else.
func (c *CPU) incr(cmd *decoder.Instruction) uint16 {
	reg := cmd.GetAddressRAM()
	curr := uint32(c.Read(reg))

	var next uint32
	switch reg {
	case regA, regQ:
		switch curr {
		case 0o077777:
			next = 0
		case 0o177777:
			next = 0o000001
		default:
			next = (curr + 1) & 0o177777
		}
	default:
		switch curr {
		case 0o37777:
			next = 0
		case 0o77777:
			next = 1
		default:
			next = (curr + 1) & 0o77777
		}
	}

	c.Write(reg, uint16(next))
	return 2
}

// su subtracts memory from the accumulator (A + ^B, ones'-complement).
func (c *CPU) su(cmd *decoder.Instruction) uint16 {
	a := uint32(c.ReadS16(regA))
	b := uint32(^c.ReadS16(cmd.GetAddressRAM()))

	ce := a + b
	if ce&0xFFFF0000 != 0 {
		ce++
	}
	c.WriteS16(regA, uint16(ce&0xFFFF))
	c.checkEditing(cmd.GetAddressRAM())
	return 2
}

// dim decrements a memory cell toward zero; null values (+0 and -0) are
// left untouched.
func (c *CPU) dim(cmd *decoder.Instruction) uint16 {
	addr := cmd.GetAddressRAM()
	val := c.ReadS16(addr)

	switch val {
	case 0o177777, 0:
		// no action on -0 or +0
	default:
		if val&0o40000 != 0 {
			c.WriteS16(addr, val+1)
		} else if val-1 == 0 {
			c.WriteS16(addr, 0o177777)
		} else {
			c.WriteS16(addr, val-1)
		}
	}
	return 2
}

// dv divides A:L by memory. Only the null-dividend case is modeled,
// matching the original implementation's partial coverage of DV.
func (c *CPU) dv(cmd *decoder.Instruction) uint16 {
	isNull := func(v uint16) bool { return v == 0o77777 || v == 0 }

	d := c.ReadS15(cmd.GetAddressRAM())
	numHigh := c.ReadS15(regA)
	numLow := c.ReadS15(regL)

	sDiv := d & 0o40000
	sNum := numHigh & 0o40000
	if isNull(numHigh) {
		sNum = numLow & 0o40000
	}

	if isNull(numHigh) && isNull(numLow) {
		if sNum^sDiv == 0 {
			c.WriteS15(regA, 0o37777)
		} else {
			c.WriteS15(regA, 0o40000)
		}
	}
	return 6
}
