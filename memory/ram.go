/*
ragc-go - erasable memory (RAM) banks.

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

const (
	ramBanks      = 8
	ramBankWords  = 256
	romBanks      = 36
	romBankWords  = 1024
	fixedBankSize = 1024
)

// RAM is the eight 256-word banks of erasable storage.
type RAM struct {
	banks [ramBanks][ramBankWords]uint16
}

func NewRAM() *RAM {
	return &RAM{}
}

func (m *RAM) Reset() {
	m.banks = [ramBanks][ramBankWords]uint16{}
}

func (m *RAM) Read(bank, offset int) uint16 {
	return m.banks[bank][offset] & 0x7FFF
}

func (m *RAM) Write(bank, offset int, value uint16) {
	m.banks[bank][offset] = value & 0x7FFF
}

// ROMBankMapping permutes logical fixed-memory banks to physical banks;
// all banks beyond the first four map identically.
var ROMBankMapping = func() [romBanks]int {
	var t [romBanks]int
	for i := range t {
		t[i] = i
	}
	t[0], t[1], t[2], t[3] = 2, 3, 0, 1
	return t
}()

// ROM is the thirty-six 1024-word banks of fixed storage. Images are
// supplied already parsed (see the rom package); ROM itself only applies
// the bank permutation and a 15-bit mask on read.
type ROM struct {
	banks [romBanks][romBankWords]uint16
}

func NewROM() *ROM {
	return &ROM{}
}

// Load installs a parsed ROM image (physical bank order, already stripped
// of the parity bit).
func (r *ROM) Load(image [romBanks][romBankWords]uint16) {
	r.banks = image
}

func (r *ROM) Read(bank, offset int) uint16 {
	if bank < 0 || bank >= romBanks {
		return 0
	}
	physical := ROMBankMapping[bank]
	return r.banks[physical][offset] & 0x7FFF
}

// Write is a no-op: the caller (Map) logs the attempt.
func (r *ROM) Write(int, int, uint16) {}
