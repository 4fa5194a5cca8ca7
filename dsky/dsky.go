/*
ragc-go - DSKY wire protocol: the 4-byte telemetry packet format carrying
an 8-bit channel address and 15-bit value between the AGC and a DSKY
panel.

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

// Package dsky implements the wire format used to carry channel reads and
// writes to and from a DSKY panel: a fixed 4-byte packet whose bytes are
// tagged 00/01/10/11 in their top two bits so a receiver can resync on any
// byte boundary.
package dsky

// Packet is a parsed DSKY telemetry packet: an I/O channel address paired
// with the value read from or destined for it.
type Packet struct {
	Addr  uint16 // channel address; GeneratePacket encodes bits 0-7
	Value uint16 // 15-bit channel value
}

// GeneratePacket encodes addr/value into the 4-byte wire format:
// [00:addr(3:7) | 01:addr(0:2),value(12:14) | 10:value(6:11) | 11:value(0:5)].
func GeneratePacket(addr, value uint16) [4]byte {
	header := byte((addr >> 3) & 0x1F)
	upper := 0x40 | byte((addr&0x7)<<3) | byte((value>>12)&0x7)
	middle := 0x80 | byte((value>>6)&0x3F)
	lower := 0xC0 | byte(value&0x3F)
	return [4]byte{header, upper, middle, lower}
}

// ParsePacket decodes a 4-byte wire packet, validating the tag bits in
// each byte's top two bits. It reports ok=false on a malformed packet.
func ParsePacket(raw [4]byte) (pkt Packet, ok bool) {
	b0, b1, b2, b3 := raw[0], raw[1], raw[2], raw[3]

	valid := b0&0xC0 == 0x00 &&
		b1&0xC0 == 0x40 &&
		b2&0xC0 == 0x80 &&
		b3&0xC0 == 0xC0
	if !valid {
		return Packet{}, false
	}

	value := (uint16(b1&0x07) << 12) | (uint16(b2&0x3F) << 6) | uint16(b3&0x3F)
	addr := (uint16(b0&0x3F) << 3) | (uint16(b1>>3) & 0x07)

	return Packet{Addr: addr, Value: value}, true
}

// Serialize re-encodes a parsed packet back to wire format.
func (p Packet) Serialize() [4]byte {
	return GeneratePacket(p.Addr, p.Value)
}
