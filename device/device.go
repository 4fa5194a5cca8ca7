/*
ragc-go - I/O peripheral interface.

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
package device

// Peripheral is implemented by anything attached to an I/O channel: the
// DSKY keyboard/display and the downlink telemetry forwarder.
type Peripheral interface {
	Read(channel uint16) uint16
	Write(channel uint16, value uint16)
	IsInterrupt() uint16 // non-zero rupt bit raised by this device, if any
}

// Channel addresses with peripheral-delegated behavior, in octal.
const (
	ChanLink     uint16 = 0o01
	ChanQ        uint16 = 0o02
	ChanHiScalar uint16 = 0o03
	ChanLoScalar uint16 = 0o04
	ChanPYJets   uint16 = 0o05
	ChanRollJets uint16 = 0o06
	ChanDSKY     uint16 = 0o10
	ChanDSALMOUT uint16 = 0o11
	Chan12       uint16 = 0o12
	Chan13       uint16 = 0o13
	Chan14       uint16 = 0o14
	ChanMNKeyIn  uint16 = 0o15
	ChanNavKeyIn uint16 = 0o16
	Chan30       uint16 = 0o30
	Chan31       uint16 = 0o31
	Chan32       uint16 = 0o32
	Chan33       uint16 = 0o33
	Chan34       uint16 = 0o34
	Chan35       uint16 = 0o35
	Chan163      uint16 = 0o163
)

// NumChannels is the size of the I/O port address space.
const NumChannels = 256
