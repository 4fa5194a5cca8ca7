/*
 * ragc-go - Format AGC words as octal strings, the register width the
 * rope and the console both speak.
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

package octal

import "strings"

var octalMap = "01234567"

// FormatWord15 appends a 15-bit AGC word as a 5-digit zero-padded octal
// number, the width every erasable and fixed memory cell carries.
func FormatWord15(str *strings.Builder, word uint16) {
	shift := 12
	for range 5 {
		str.WriteByte(octalMap[(word>>shift)&0x7])
		shift -= 3
	}
}

// FormatWord16 appends a 16-bit accumulator/multiplier word, one octal
// digit wider than FormatWord15 to carry the overflow bit pair.
func FormatWord16(str *strings.Builder, word uint16) {
	str.WriteByte(octalMap[(word>>15)&0x1])
	FormatWord15(str, word&0x7FFF)
}

// FormatWords renders a slice of 15-bit words space-separated.
func FormatWords(str *strings.Builder, words []uint16) {
	for i, w := range words {
		if i > 0 {
			str.WriteByte(' ')
		}
		FormatWord15(str, w)
	}
}
