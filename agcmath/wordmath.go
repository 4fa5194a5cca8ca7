/*
 * AGC - Ones'-complement word arithmetic.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package agcmath implements the ones'-complement word arithmetic the AGC
// arithmetic unit relies on: 15-bit and 16-bit end-around-carry addition,
// overflow normalization, and translation to and from ordinary signed Go
// integers.
package agcmath

// AdjustOverflow normalizes a 16-bit accumulator value back into range
// whenever the two overflow bits (bits 15-14) disagree with the sign bit.
func AdjustOverflow(word uint16) uint16 {
	switch word & 0xC000 {
	case 0x8000:
		return word | 0xC000
	case 0x4000:
		return word & 0x3FFF
	default:
		return word
	}
}

// ExtendSignBits widens a 15-bit value to 16 bits by duplicating its sign.
func ExtendSignBits(value uint16) uint16 {
	if value&0x4000 != 0 {
		return value | 0x8000
	}
	return value & 0x7FFF
}

// AddS15 adds two 15-bit ones'-complement values with end-around carry.
func AddS15(op1, op2 uint16) uint16 {
	sum := uint32(op1) + uint32(op2)
	if sum&0x8000 != 0 {
		sum++
	}
	return uint16(sum & 0x7FFF)
}

// AddS16 adds two 16-bit ones'-complement values with end-around carry.
func AddS16(left, right uint16) uint16 {
	total := uint32(left) + uint32(right)
	if total&0xFFFF0000 != 0 {
		total++
	}
	return uint16(total & 0xFFFF)
}

// AddDP29 adds two 29-bit double-precision values with end-around carry.
func AddDP29(num1, num2 uint32) uint32 {
	result := num1 + num2
	if result&0xE0000000 != 0 {
		result++
	}
	return result
}

// ToAGC converts a signed Go integer to 15-bit ones'-complement format.
func ToAGC(value int16) uint16 {
	if value < 0 {
		return ^uint16(-value) & 0x7FFF
	}
	return uint16(value) & 0x7FFF
}

// FromAGC converts a 15-bit ones'-complement value to a signed Go integer.
func FromAGC(word uint16) int16 {
	if word&0x4000 != 0 {
		return -int16((^word) & 0x3FFF)
	}
	return int16(word & 0x3FFF)
}

// ToAGCDouble converts a signed 32-bit value to double-precision
// ones'-complement format (two 15-bit words joined with a shared sign).
func ToAGCDouble(value int32) uint32 {
	if value < 0 {
		return ^uint32(-value) & 0x1FFFFFFF
	}
	return uint32(value) & 0x1FFFFFFF
}

// FromAGCDouble converts a double-precision ones'-complement value to a
// signed int32.
func FromAGCDouble(word uint32) int32 {
	if word&0x10000000 != 0 {
		return -int32((^word) & 0x0FFFFFFF)
	}
	return int32(word & 0x0FFFFFFF)
}
