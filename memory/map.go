/*
ragc-go - central memory map: register file, banked RAM/ROM, and I/O routing.

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

// Linear address-space boundaries, octal.
const (
	VolatileStart   = 0o61
	VolatileEnd     = 0o1777
	PersistentStart = 0o2000
	PersistentEnd   = 0o7777
)

// I/O channel numbers with special routing through the memory map, octal.
const (
	ChannelL        = 0o01
	ChannelQ        = 0o02
	ChannelHiScalar = 0o03
	ChannelLoScalar = 0o04
	ChannelChan34   = 0o34
	ChannelChan35   = 0o35
)

// IOController is the subset of the channel package's controller the map
// needs; kept as an interface so memory and channel don't import each other.
type IOController interface {
	ReadPort(idx int) uint16
	WritePort(idx int, value uint16)
	InterruptStatus() uint16
}

// Map implements the AGC's 4096-word linear address space: CPU registers,
// edit registers, timers, special registers, banked erasable RAM, banked
// fixed ROM, and (through IO) the 256-channel peripheral bus.
type Map struct {
	Regs    *Registers
	Edit    *EditRegisters
	Timers  *Clocks
	Special *SpecialRegisters
	RAM     *RAM
	ROM     *ROM
	IO      IOController
}

func NewMap(io IOController) *Map {
	return &Map{
		Regs:    NewRegisters(),
		Edit:    NewEditRegisters(),
		Timers:  NewClocks(),
		Special: NewSpecialRegisters(),
		RAM:     NewRAM(),
		ROM:     NewROM(),
		IO:      io,
	}
}

func (m *Map) Reset() {
	m.Regs.Reset()
	m.Edit.Reset()
	m.Timers.Reset()
	m.Special.Reset()
	m.RAM.Reset()
}

// Read dispatches a linear address read across the register file, edit
// registers, timers, special registers, erasable RAM, or fixed ROM.
func (m *Map) Read(idx uint16) uint16 {
	switch {
	case idx <= 0o17:
		return m.Regs.Read(int(idx))
	case idx >= 0o20 && idx <= 0o23:
		return m.Edit.Read(int(idx))
	case idx >= 0o24 && idx <= 0o31:
		return m.Timers.Read(int(idx))
	case idx >= 0o32 && idx <= 0o60:
		return m.Special.Read(int(idx))
	case idx >= VolatileStart && idx <= VolatileEnd:
		if (idx >> 8) == 3 {
			return m.RAM.Read(m.Regs.ErasableBank, int(idx&0xff))
		}
		return m.RAM.Read(int(idx>>8), int(idx&0xff))
	case idx >= PersistentStart && idx <= PersistentEnd:
		offset := idx - PersistentStart
		bankIdx := int(offset >> 10)
		if bankIdx == 1 {
			return m.ROM.Read(m.Regs.FixedBank, int(offset&0x3ff))
		}
		return m.ROM.Read(bankIdx, int(offset&0x3ff))
	default:
		slog.Error("unimplemented memory map read", "addr", idx)
		return 0
	}
}

// Write dispatches a linear address write to the same destinations Read
// draws from.
func (m *Map) Write(idx uint16, value uint16) {
	switch {
	case idx <= 0o17:
		m.Regs.Write(int(idx), value)
	case idx >= 0o20 && idx <= 0o23:
		m.Edit.Write(int(idx), value)
	case idx >= 0o24 && idx <= 0o31:
		m.Timers.Write(int(idx), value)
	case idx >= 0o32 && idx <= 0o60:
		m.Special.Write(int(idx), value)
	case idx >= VolatileStart && idx <= VolatileEnd:
		if (idx >> 8) == 3 {
			m.RAM.Write(m.Regs.ErasableBank, int(idx&0xff), value)
		} else {
			m.RAM.Write(int(idx>>8), int(idx&0xff), value)
		}
	case idx >= PersistentStart && idx <= PersistentEnd:
		slog.Warn("write to fixed memory ignored", "addr", idx)
		offset := idx - PersistentStart
		bankIdx := int(offset >> 10)
		if bankIdx == 1 {
			m.ROM.Write(m.Regs.FixedBank, int(offset&0x3ff), value)
		} else {
			m.ROM.Write(bankIdx, int(offset&0x3ff), value)
		}
	default:
		slog.Error("unimplemented memory map write", "addr", idx)
	}
}

// ReadIO handles channel reads with the register and timer aliasing the
// real hardware wires through channels L, Q, and the scaler pair.
func (m *Map) ReadIO(idx int) uint16 {
	switch idx {
	case ChannelL:
		return m.Regs.Read(RegLink)
	case ChannelQ:
		return m.Regs.Read(RegMultiplier)
	case ChannelHiScalar:
		result := m.Timers.GetCounterValue()
		return uint16((result >> 14) & 0o37777)
	case ChannelLoScalar:
		result := m.Timers.GetCounterValue()
		return uint16(result & 0o37777)
	default:
		return m.IO.ReadPort(idx)
	}
}

// WriteIO handles channel writes, routing L/Q to their aliased registers
// and CHAN34/CHAN35 to both the peripheral bus and the downlink/uplink
// interrupt-flag latch.
func (m *Map) WriteIO(idx int, value uint16) {
	switch idx {
	case ChannelL:
		m.Regs.Write(RegLink, value)
	case ChannelQ:
		m.Regs.Write(RegMultiplier, value)
	case ChannelChan34:
		m.Timers.UpdateInterruptFlags(1)
		m.IO.WritePort(idx, value)
	case ChannelChan35:
		m.Timers.UpdateInterruptFlags(2)
		m.IO.WritePort(idx, value)
	default:
		m.IO.WritePort(idx, value)
	}
}

// CheckInterrupts aggregates interrupt status from the I/O subsystem.
func (m *Map) CheckInterrupts() uint16 {
	return m.IO.InterruptStatus()
}
