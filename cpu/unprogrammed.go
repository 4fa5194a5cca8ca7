/*
ragc-go - AGC unprogrammed-sequence handling: the GOJ (GO-JAM) hardware
reset sequence queued onto the unprogrammed FIFO.

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

// Channel addresses zeroed by handleGOJ. Named locally rather than
// imported from the channel package, which the cpu package never depends
// on directly - all channel access goes through Mem.ReadIO/WriteIO.
const (
	chanPYJets   = 0o05
	chanRollJets = 0o06
	chanDSKY     = 0o10
	chanDSALMOUT = 0o11
	chan12       = 0o12
	chan13       = 0o13
	chan14       = 0o14
	chan33       = 0o33
	chan34       = 0o34
	chan35       = 0o35
)

// handleGOJ runs the GO-JAM hardware sequence: it zeros the jet and DSKY
// channels, clears the restart-monitor bits in channel 33, disables
// interrupts, and restarts the processor.
func (c *CPU) handleGOJ() {
	c.WriteIO(chanPYJets, 0)
	c.WriteIO(chanRollJets, 0)
	c.WriteIO(chanDSKY, 0)
	c.WriteIO(chanDSALMOUT, 0)
	c.WriteIO(chan12, 0)
	c.WriteIO(chan13, 0)
	c.WriteIO(chan14, 0)
	c.WriteIO(chan34, 0)
	c.WriteIO(chan35, 0)

	val := c.ReadIO(chan33)
	c.WriteIO(chan33, val&0o75777)

	c.GInt = false
	c.IsIRupt = false

	c.tcCount = 0
	c.nonTCCount = 0

	c.Restart()
}
