/*
ragc-go - DSKY keyboard/display peripheral: the panel's keyboard register
and display segments, modeled as the minimal in-memory state a console
front-end needs to render and drive.

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
package peripheral

import (
	"sync"

	"github.com/apollo-agc/ragc-go/device"
	"github.com/apollo-agc/ragc-go/memory"
)

const chanMNKeyIn = 0o15

// Display is a device.Peripheral standing in for the DSKY panel: a
// keyboard register fed by PushKey and a bank of display channels any
// console front-end can poll via Segments.
type Display struct {
	mu      sync.Mutex
	keyIn   uint16
	pending bool

	segments map[uint16]uint16
}

func NewDisplay() *Display {
	return &Display{segments: make(map[uint16]uint16)}
}

// PushKey latches a keypress into the MNKEYIN register and raises the
// keypress interrupt (InterruptKeypress1) until it is read.
func (d *Display) PushKey(code uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keyIn = code
	d.pending = true
}

// Segments returns a snapshot of every channel the AGC has written to the
// display, keyed by channel number, for a console to render.
func (d *Display) Segments() map[uint16]uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[uint16]uint16, len(d.segments))
	for k, v := range d.segments {
		out[k] = v
	}
	return out
}

// Read implements device.Peripheral.
func (d *Display) Read(channel uint16) uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch channel {
	case chanMNKeyIn:
		d.pending = false
		return d.keyIn
	default:
		return d.segments[channel]
	}
}

// Write implements device.Peripheral.
func (d *Display) Write(channel uint16, value uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.segments[channel] = value
}

// IsInterrupt implements device.Peripheral, signaling the keypress
// interrupt (InterruptKeypress1) while a pushed key hasn't been read yet.
func (d *Display) IsInterrupt() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending {
		return 1 << memory.InterruptKeypress1
	}
	return 0
}

var _ device.Peripheral = (*Display)(nil)
