/*
ragc-go - console register dump.

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
	"strings"

	"github.com/apollo-agc/ragc-go/util/octal"
)

// RegisterDump renders A, L, Q, Z (the program counter) and the extend
// and interrupt flags as a single line of octal fields, for the console
// show command.
func (c *CPU) RegisterDump() string {
	var b strings.Builder

	b.WriteString("A=")
	octal.FormatWord16(&b, c.ReadS16(regA))
	b.WriteString(" L=")
	octal.FormatWord15(&b, c.ReadS15(regL))
	b.WriteString(" Q=")
	octal.FormatWord16(&b, c.ReadS16(regQ))
	b.WriteString(" Z=")
	octal.FormatWord15(&b, c.Read(regZ))
	b.WriteString(" EXT=")
	if c.ECFlag {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteString(" GINT=")
	if c.GInt {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}

	return b.String()
}
