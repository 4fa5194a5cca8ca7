/*
ragc-go - instruction dispatch: routes a decoded instruction to its
implementation and tracks the TC/non-TC run lengths interrupt handling
needs.

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

// execute dispatches a decoded instruction to its implementation and
// returns the machine-cycle-time cost.
func (c *CPU) execute(inst *decoder.Instruction) uint16 {
	switch inst.Mnem {
	case decoder.TC, decoder.TCF:
		c.nonTCCount = 0
		c.tcCount++
	default:
		c.tcCount = 0
		c.nonTCCount++
	}

	switch inst.Mnem {
	case decoder.AD:
		return c.ad(inst)
	case decoder.ADS:
		return c.ads(inst)
	case decoder.AUG:
		return c.aug(inst)
	case decoder.BZF:
		return c.bzf(inst)
	case decoder.BZMF:
		return c.bzmf(inst)
	case decoder.CA:
		return c.ca(inst)
	case decoder.CS:
		return c.cs(inst)
	case decoder.CCS:
		return c.ccs(inst)
	case decoder.DAS:
		return c.das(inst)
	case decoder.DCA:
		return c.dca(inst)
	case decoder.DCS:
		return c.dcs(inst)
	case decoder.DIM:
		return c.dim(inst)
	case decoder.DV:
		return c.dv(inst)
	case decoder.DXCH:
		return c.dxch(inst)
	case decoder.EDRUPT:
		return c.edrupt(inst)
	case decoder.EXTEND:
		c.ECFlag = true
		c.IdxVal = 0
		return 1
	case decoder.INCR:
		return c.incr(inst)
	case decoder.INDEX:
		return c.index(inst)
	case decoder.INHINT:
		return c.inhint(inst)
	case decoder.LXCH:
		return c.lxch(inst)
	case decoder.MASK:
		return c.mask(inst)
	case decoder.MP:
		return c.mp(inst)
	case decoder.QXCH:
		return c.qxch(inst)
	case decoder.RAND:
		return c.rand(inst)
	case decoder.READ:
		return c.readInstr(inst)
	case decoder.RELINT:
		return c.relint(inst)
	case decoder.RESUME:
		return c.resume(inst)
	case decoder.ROR:
		return c.ror(inst)
	case decoder.RXOR:
		return c.rxor(inst)
	case decoder.SU:
		return c.su(inst)
	case decoder.TC:
		return c.tc(inst)
	case decoder.TCF:
		return c.tcf(inst)
	case decoder.TS:
		return c.ts(inst)
	case decoder.WAND:
		return c.wand(inst)
	case decoder.WOR:
		return c.wor(inst)
	case decoder.WRITE:
		return c.writeInstr(inst)
	case decoder.XCH:
		return c.xch(inst)
	default:
		c.ECFlag = false
		c.IdxVal = 0
		return 0
	}
}
