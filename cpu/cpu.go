/*
ragc-go - AGC Block II execution engine: fetch, decode, execute, account.

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

	"github.com/apollo-agc/ragc-go/agcmath"
	"github.com/apollo-agc/ragc-go/decoder"
	"github.com/apollo-agc/ragc-go/memory"
)

// Register aliases used throughout the instruction families.
const (
	regA    = memory.RegAccumulator
	regL    = memory.RegLink
	regQ    = memory.RegMultiplier // also RegReturn
	regZ    = memory.RegZero       // also RegCounter (program counter)
	regZBak = memory.RegCounterBack
	regIR   = memory.RegInstruction
)

// unprogStep names one cell of the unprogrammed-sequence FIFO: hardware
// micro-operations the CPU runs between programmed instructions.
type unprogStep int

const (
	stepPINC unprogStep = iota
	stepPCDU
	stepMINC
	stepMCDU
	stepDINC
	stepSHINC
	stepSHANC
	stepINOTRD
	stepINOTLD
	stepFETCH
	stepSTORE
	stepGOJ
	stepTCSAJ
	stepRUPT
)

// CPU holds the AGC Block II processor state: the register file (via the
// memory map), the instruction/index registers, the extend and interrupt
// flags, and the unprogrammed-sequence queue.
type CPU struct {
	Mem *memory.Map

	IR     uint16 // instruction register
	IdxVal uint16 // indexed value for addressing
	ECFlag bool   // EXTEND flag

	TotalCycles int
	mctCounter  float64

	GInt    bool // general interrupt enable
	IsIRupt bool // interrupt service in progress
	Rupt    uint16

	unprog [8]unprogStep
	unHead int
	unLen  int

	tcCount    uint32
	nonTCCount uint32
}

func New(mem *memory.Map) *CPU {
	c := &CPU{Mem: mem, Rupt: 1 << memory.InterruptDownlink}
	c.Reset()
	return c
}

// Reset restores the CPU to its startup state: PC set to the bootstrap
// fixed-memory address, interrupts disabled.
func (c *CPU) Reset() {
	c.UpdatePC(0x800)
	c.GInt = false
}

// Restart mirrors Reset but additionally signals the restart condition on
// channel 0o163, matching the AGC's RESTART light.
func (c *CPU) Restart() {
	c.UpdatePC(0x800)
	c.GInt = false

	ioVal := c.ReadIO(0o163)
	c.WriteIO(0o163, 0o200|ioVal)
}

// UpdatePC sets the program counter and pre-fetches the instruction at the
// new address into IR.
func (c *CPU) UpdatePC(val uint16) {
	c.Write(regZ, val)
	c.IR = c.Read(int(val))
}

// checkEditing refreshes the four edit-pseudo registers after any write
// that might have targeted one of them, so a later read sees the shifted
// value rather than the raw write.
func (c *CPU) checkEditing(k int) {
	switch k {
	case memory.EditCycleRight, memory.EditShift, memory.EditCycleLeft, memory.EditOp:
		v := c.ReadS15(k)
		c.WriteS15(k, v)
	}
}

func (c *CPU) Read(idx int) uint16 {
	return c.Mem.Read(uint16(idx))
}

func (c *CPU) Write(idx int, val uint16) {
	c.Mem.Write(uint16(idx), val)
}

// ReadS16 reads a register with sign-bit duplication into the full 16-bit
// field; the accumulator and multiplier are already 16 bits wide.
func (c *CPU) ReadS16(idx int) uint16 {
	switch idx {
	case regA, regQ:
		return c.Read(idx)
	default:
		return agcmath.ExtendSignBits(c.Read(idx))
	}
}

// ReadS15 reads a register as a plain 15-bit ones'-complement value,
// folding the accumulator/multiplier's overflow bits back into the sign.
func (c *CPU) ReadS15(idx int) uint16 {
	switch idx {
	case regA, regQ:
		return agcmath.AdjustOverflow(c.Read(idx)) & 0x7FFF
	default:
		return c.Read(idx) & 0x7FFF
	}
}

// WriteS16 writes a full 16-bit value, adjusting overflow into the sign
// bits for non-accumulator/multiplier registers.
func (c *CPU) WriteS16(idx int, value uint16) {
	switch idx {
	case regA, regQ:
		c.Write(idx, value)
	default:
		c.Write(idx, agcmath.AdjustOverflow(value)&0o77777)
	}
}

// WriteS15 writes a 15-bit value, extending the sign into the overflow
// bits for the accumulator/multiplier.
func (c *CPU) WriteS15(idx int, value uint16) {
	switch idx {
	case regA, regQ:
		c.Write(idx, agcmath.ExtendSignBits(value))
	default:
		c.Write(idx, value&0o77777)
	}
}

// ReadDP reads a double-precision (renormalized sign) value spanning two
// consecutive words.
func (c *CPU) ReadDP(idx int) uint32 {
	upper := uint32(c.ReadS15(idx))
	lower := uint32(c.ReadS15(idx + 1))

	if (upper & 0o40000) == (lower & 0o40000) {
		return (upper << 14) | (lower & 0o37777)
	}

	var res uint32
	if lower&0o40000 == 0o40000 {
		res = (upper << 14) + (lower | 0o3777740000)
	} else {
		res = ((upper + 1) << 14) + (lower - 1)
	}
	if res&0o4000000000 == 0o4000000000 {
		res++
	}
	return res & 0o3777777777
}

// WriteDP writes a double-precision value across two consecutive words,
// sharing the sign bit between them.
func (c *CPU) WriteDP(idx int, val uint32) {
	upper := uint16((val >> 14) & 0o77777)
	lower := uint16(val&0o37777) | (upper & 0o40000)

	c.WriteS15(idx, upper)
	c.WriteS15(idx+1, lower)
}

func (c *CPU) ReadIO(idx int) uint16 {
	return c.Mem.ReadIO(idx)
}

func (c *CPU) WriteIO(idx int, val uint16) {
	c.Mem.WriteIO(idx, val)
}

func (c *CPU) isOverflow() bool {
	a := c.Read(regA)
	return a&0xC000 != 0xC000 && a&0xC000 != 0x0000
}

func (c *CPU) interruptDisabled() bool {
	return c.ECFlag || !c.GInt || c.IsIRupt || c.isOverflow()
}

func (c *CPU) interruptPending() bool {
	return c.Rupt != 0
}

// handleInterrupt dispatches the lowest-numbered pending interrupt: it
// saves the return PC and current instruction, then jumps to that
// interrupt's fixed-memory vector.
func (c *CPU) handleInterrupt() {
	for i := 0; i <= memory.InterruptManual; i++ {
		mask := uint16(1) << i
		if c.Rupt&mask == 0 {
			continue
		}
		c.GInt = false
		val := c.Read(regZ) + 1
		c.Write(regZBak, val)
		c.Write(regIR, c.calculateInstrData())
		c.IdxVal = 0

		newPC := uint16(0x800 + i*4)
		c.UpdatePC(newPC)

		c.Rupt ^= mask
		break
	}
}

// calculateInstrData folds the pending index value into IR and, if
// EXTEND is latched, sets bit 15 so the decoder routes to the extended
// instruction table.
func (c *CPU) calculateInstrData() uint16 {
	instData := agcmath.AddS15(c.IR, c.IdxVal)
	if c.ECFlag {
		instData |= 0x8000
	}
	return instData
}

// timerTickUnits is the mctCounter threshold corresponding to roughly
// 10ms of simulated time (the real AGC's scaler/timer tick rate), given
// an MCT of ~11.7µs charged in units of 12 per updateCycles call.
const timerTickUnits = 10256.0

func (c *CPU) updateCycles(cycles uint16) {
	c.mctCounter += float64(cycles) * 12.0
	c.TotalCycles += int(cycles)

	for c.mctCounter >= timerTickUnits {
		c.mctCounter -= timerTickUnits
		c.Mem.Timers.AdvanceMasterCounter()
		c.Mem.Timers.ProcessTimer2()
		c.Rupt |= c.Mem.Timers.ProcessTimer3()
		c.Rupt |= c.Mem.Timers.ProcessTimer4()
	}
}

func (c *CPU) pushUnprog(step unprogStep) {
	if c.unLen >= len(c.unprog) {
		return
	}
	tail := (c.unHead + c.unLen) % len(c.unprog)
	c.unprog[tail] = step
	c.unLen++
}

func (c *CPU) popUnprog() unprogStep {
	step := c.unprog[c.unHead]
	c.unHead = (c.unHead + 1) % len(c.unprog)
	c.unLen--
	return step
}

// Step runs one step: an unprogrammed micro-operation if any are
// queued, otherwise a fully decoded programmed instruction. It returns
// the machine-cycle-time cost of the step just executed.
func (c *CPU) Step() uint16 {
	if c.unLen > 0 {
		return c.stepUnprogrammed()
	}
	return c.stepProgrammed()
}

func (c *CPU) stepUnprogrammed() uint16 {
	instr := c.popUnprog()
	var cycles uint16 = 1
	switch instr {
	case stepGOJ, stepTCSAJ, stepSTORE, stepFETCH, stepRUPT:
		cycles = 2
	}

	c.updateCycles(cycles)

	if instr == stepGOJ {
		c.handleGOJ()
		return cycles
	}

	if !c.interruptDisabled() {
		c.Rupt |= c.Mem.CheckInterrupts()
		if c.interruptPending() {
			c.handleInterrupt()
			c.IsIRupt = true
		}
	}

	return cycles
}

func (c *CPU) stepProgrammed() uint16 {
	if !c.interruptDisabled() && c.interruptPending() {
		c.handleInterrupt()
		c.IsIRupt = true
		return 0
	}

	instData := c.calculateInstrData()
	addr := c.Read(regZ)
	inst, err := decoder.Decode(addr, instData)
	if err != nil {
		// An invalid encoding decodes to nothing executable; it is logged
		// and stops the emulator.
		slog.Error("instruction decode failed", "pc", addr, "data", instData, "err", err)
		panic(err)
	}
	nextPC := addr + 1
	c.UpdatePC(nextPC)

	c.IdxVal = 0

	if c.ECFlag && inst.Mnem != decoder.INDEX {
		c.ECFlag = false
	}

	cycles := c.execute(&inst)
	c.updateCycles(cycles)
	return cycles
}
