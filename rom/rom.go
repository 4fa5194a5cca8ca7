/*
ragc-go - fixed-memory ROM image loader: parses a raw rope-dump file into
the bank layout memory.ROM expects.

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

// Package rom parses an AGC rope-core dump into the 36-bank, 1024-word
// image memory.ROM.Load expects. The on-disk format is a flat sequence of
// big-endian 16-bit words, one bit of which is a parity bit this package
// drops.
package rom

import (
	"encoding/binary"
	"fmt"
	"os"
)

const (
	numBanks   = 36
	bankWords  = 1024
	imageBytes = numBanks * bankWords * 2
)

// Image is a parsed ROM core dump in physical-bank order, ready to hand to
// memory.ROM.Load.
type Image [numBanks][bankWords]uint16

// Parse decodes a raw rope dump into an Image, dropping the parity bit
// each big-endian word carries in its low bit.
func Parse(data []byte) (Image, error) {
	var img Image
	if len(data) != imageBytes {
		return img, fmt.Errorf("rom: image is %d bytes, want %d", len(data), imageBytes)
	}

	offset := 0
	for bank := 0; bank < numBanks; bank++ {
		for word := 0; word < bankWords; word++ {
			raw := binary.BigEndian.Uint16(data[offset : offset+2])
			img[bank][word] = (raw >> 1) & 0x7FFF
			offset += 2
		}
	}
	return img, nil
}

// Load reads and parses a rope dump from disk.
func Load(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("rom: reading %s: %w", path, err)
	}
	return Parse(data)
}
