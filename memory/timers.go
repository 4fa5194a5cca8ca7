/*
ragc-go - AGC timing systems and interrupt-flag bookkeeping.

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

// Timer register addresses, octal.
const (
	Timer2Address = 0o24
	Timer1Address = 0o25
	Timer3Address = 0o26
	Timer4Address = 0o27
)

// Interrupt bit positions within the flags returned by ProcessTimer4 and
// TriggerInterrupt, matching the CPU's interrupt-request vector.
const (
	InterruptReset     = 0x0
	InterruptTimer3    = 0x3
	InterruptTimer4    = 0x4
	InterruptKeypress1 = 0x5
	InterruptKeypress2 = 0x6
	InterruptUplink    = 0x7
	InterruptDownlink  = 0x8
	InterruptRadar     = 0x9
	InterruptManual    = 0xA
)

// Clocks manages the AGC's four hardware timers and the flags that feed
// the interrupt-request logic.
type Clocks struct {
	counter        uint32
	ruptCounter    uint32
	interruptFlags uint8

	timer1 uint32 // 14-bit timer
	timer2 uint16 // 15-bit free-running counter
	timer3 uint16 // 15-bit general purpose, rolls over like T4
	timer4 uint16 // 15-bit timer, generates a periodic interrupt
}

func NewClocks() *Clocks {
	return &Clocks{ruptCounter: 1}
}

func (c *Clocks) Reset() {
	c.timer1 = 0
	c.timer2 = 0
	c.timer3 = 0
	c.timer4 = 0
}

// UpdateInterruptFlags merges newly raised flags into the pending set; once
// both tracked flags are set together they are cleared and the rupt
// service counter restarts.
func (c *Clocks) UpdateInterruptFlags(flags uint8) {
	c.interruptFlags |= flags
	if c.interruptFlags == 0x3 {
		c.interruptFlags = 0x0
		c.ruptCounter = 0
	}
}

// ProcessTimer2 advances the free-running T2 counter. T2 has no assigned
// interrupt in AGC Block II; it exists purely as a readable tick source.
func (c *Clocks) ProcessTimer2() {
	c.timer2 = (c.timer2 + 1) & 0o77777
}

// ProcessTimer3 advances T3 and, mirroring T4's rollover-triggered
// interrupt, requests INTERRUPT_TIMER3 at half-range.
func (c *Clocks) ProcessTimer3() uint16 {
	c.timer3 = (c.timer3 + 1) & 0o77777
	if c.timer3 == 0o40000 {
		c.timer3 = 0
		return 1 << InterruptTimer3
	}
	return 0
}

// ProcessTimer4 advances T4 and requests INTERRUPT_TIMER4 at half-range.
func (c *Clocks) ProcessTimer4() uint16 {
	c.timer4 = (c.timer4 + 1) & 0o77777
	if c.timer4 == 0o40000 {
		c.timer4 = 0
		return 1 << InterruptTimer4
	}
	return 0
}

// TriggerInterrupt signals the external downlink interrupt.
func (c *Clocks) TriggerInterrupt() uint16 {
	return 1 << InterruptDownlink
}

// AdvanceMasterCounter advances the 29-bit master scaler that backs the
// HISCALAR/LOSCALAR channel readbacks.
func (c *Clocks) AdvanceMasterCounter() {
	c.counter = (c.counter + 1) & 0x1FFFFFFF
}

func (c *Clocks) GetCounterValue() uint32 {
	return c.counter
}

func (c *Clocks) Read(addr int) uint16 {
	switch addr {
	case Timer1Address:
		return uint16(c.timer1 & 0o37777)
	case Timer2Address:
		return c.timer2
	case Timer3Address:
		return c.timer3
	case Timer4Address:
		return c.timer4
	default:
		return 0
	}
}

func (c *Clocks) Write(addr int, value uint16) {
	switch addr {
	case Timer1Address:
		c.timer1 = uint32(value)
	case Timer2Address:
		c.timer2 = value & 0o77777
	case Timer3Address:
		c.timer3 = value & 0o77777
	case Timer4Address:
		c.timer4 = value & 0o77777
	}
}
