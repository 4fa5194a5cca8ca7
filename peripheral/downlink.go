/*
ragc-go - downlink telemetry peripheral: forwards DSKY channel writes to
any connected TCP client as wire-format packets.

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
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/apollo-agc/ragc-go/device"
	"github.com/apollo-agc/ragc-go/dsky"
)

const (
	chan13 = 0o13
	chan30 = 0o30
	chan31 = 0o31
	chan32 = 0o32
	chan33 = 0o33
	chan34 = 0o34
	chan35 = 0o35
)

// Downlink is a device.Peripheral that forwards channel 34/35 writes to
// every connected TCP client as DSKY wire packets, and reports fixed
// calibration values back for the channels real hardware pegs high.
type Downlink struct {
	mu        sync.Mutex
	wordOrder bool // toggled by CHAN13 writes, read back on bit 6

	wg       sync.WaitGroup
	listener net.Listener
	shutdown chan struct{}
	clients  map[net.Conn]struct{}
}

// NewDownlink starts listening on addr (e.g. "127.0.0.1:19800") and
// accepting client connections in the background.
func NewDownlink(addr string) (*Downlink, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("downlink listen on %s: %w", addr, err)
	}

	d := &Downlink{
		listener: listener,
		shutdown: make(chan struct{}),
		clients:  make(map[net.Conn]struct{}),
	}

	d.wg.Add(1)
	go d.acceptConnections()
	return d, nil
}

func (d *Downlink) acceptConnections() {
	defer d.wg.Done()
	for {
		select {
		case <-d.shutdown:
			return
		default:
			conn, err := d.listener.Accept()
			if err != nil {
				continue
			}
			d.mu.Lock()
			d.clients[conn] = struct{}{}
			d.mu.Unlock()
		}
	}
}

// Stop closes the listener and every connected client.
func (d *Downlink) Stop() {
	close(d.shutdown)
	d.listener.Close()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("timed out waiting for downlink listener to close")
	}

	d.mu.Lock()
	for conn := range d.clients {
		conn.Close()
	}
	d.mu.Unlock()
}

func (d *Downlink) broadcast(addr, value uint16) {
	raw := dsky.GeneratePacket(addr, value)

	d.mu.Lock()
	defer d.mu.Unlock()
	for conn := range d.clients {
		if _, err := conn.Write(raw[:]); err != nil {
			conn.Close()
			delete(d.clients, conn)
		}
	}
}

// Read implements device.Peripheral.
func (d *Downlink) Read(channel uint16) uint16 {
	switch channel {
	case chan13:
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.wordOrder {
			return 1 << 6
		}
		return 0
	case chan30, chan31, chan32, chan33, chan34, chan35:
		return 0o77777
	default:
		return 0
	}
}

// Write implements device.Peripheral.
func (d *Downlink) Write(channel uint16, value uint16) {
	switch channel {
	case chan13:
		d.mu.Lock()
		d.wordOrder = value&(1<<6) != 0
		d.mu.Unlock()
	case chan34, chan35:
		d.broadcast(channel, value)
	}
}

// IsInterrupt implements device.Peripheral; the downlink never raises one
// on its own - the downlink interrupt is software-triggered from the CPU
// side, not this peripheral.
func (d *Downlink) IsInterrupt() uint16 {
	return 0
}

var _ device.Peripheral = (*Downlink)(nil)
