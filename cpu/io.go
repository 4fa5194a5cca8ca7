/*
ragc-go - AGC I/O-channel family: OR/AND/XOR read-modify-write and plain
read/write to the channel space.

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

// channelPort extracts the 9-bit channel address from an I/O instruction.
func channelPort(cmd *decoder.Instruction) int {
	return int(cmd.GetData() & 0x1FF)
}

// ror ORs a channel's contents into the accumulator.
func (c *CPU) ror(cmd *decoder.Instruction) uint16 {
	port := channelPort(cmd)
	val := c.ReadIO(port)

	if port == 2 {
		c.WriteS16(regA, c.ReadS16(regA)|val)
	} else {
		c.WriteS15(regA, (c.ReadS15(regA)|val)&0x7FFF)
	}
	return 2
}

// rand ANDs a channel's contents into the accumulator.
func (c *CPU) rand(cmd *decoder.Instruction) uint16 {
	port := channelPort(cmd)
	val := c.ReadIO(port)

	if port == 2 {
		c.WriteS16(regA, c.ReadS16(regA)&val)
	} else {
		c.WriteS15(regA, (c.ReadS15(regA)&val)&0x7FFF)
	}
	return 2
}

// rxor XORs a channel's contents into the accumulator.
func (c *CPU) rxor(cmd *decoder.Instruction) uint16 {
	port := channelPort(cmd)
	val := c.ReadIO(port)

	if port == 2 {
		c.WriteS16(regA, c.ReadS16(regA)^val)
	} else {
		c.WriteS15(regA, (c.ReadS15(regA)^val)&0x7FFF)
	}
	return 2
}

// wor ORs the accumulator into a channel, leaving the result in both.
func (c *CPU) wor(cmd *decoder.Instruction) uint16 {
	port := channelPort(cmd)
	val := c.ReadIO(port)

	if port == 2 {
		res := c.ReadS16(regA) | val
		c.WriteS16(regA, res)
		c.WriteIO(port, res)
	} else {
		res := (c.ReadS15(regA) | val) & 0x7FFF
		c.WriteS15(regA, res)
		c.WriteIO(port, res)
	}
	return 2
}

// wand ANDs the accumulator into a channel, leaving the result in both.
func (c *CPU) wand(cmd *decoder.Instruction) uint16 {
	port := channelPort(cmd)
	val := c.ReadIO(port)

	if port == 2 {
		res := c.ReadS16(regA) & val
		c.WriteS16(regA, res)
		c.WriteIO(port, res)
	} else {
		res := (c.ReadS15(regA) & val) & 0x7FFF
		c.WriteS15(regA, res)
		c.WriteIO(port, res)
	}
	return 2
}

// readInstr loads a channel straight into the accumulator.
func (c *CPU) readInstr(cmd *decoder.Instruction) uint16 {
	port := channelPort(cmd)
	val := c.ReadIO(port)

	if port == 2 {
		c.WriteS16(regA, val)
	} else {
		c.WriteS16(regA, agcmath.ExtendSignBits(val))
	}
	return 2
}

// writeInstr stores the accumulator straight into a channel.
func (c *CPU) writeInstr(cmd *decoder.Instruction) uint16 {
	port := channelPort(cmd)
	data := c.ReadS16(regA)

	if port == 2 {
		c.WriteIO(port, data)
	} else {
		c.WriteIO(port, agcmath.AdjustOverflow(data)&0x7FFF)
	}
	return 2
}
