/*
ragc-go - 256-channel I/O port controller.

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
package channel

import (
	"log/slog"

	"github.com/apollo-agc/ragc-go/device"
)

// Channel port numbers routed specially by Controller, octal.
const (
	PortLoScalar = 0o04
	PortHiScalar = 0o03
	PortPYJets   = 0o05
	PortRollJets = 0o06
	PortDSKY     = 0o10
	PortDSALMOUT = 0o11
	Port12       = 0o12
	Port13       = 0o13
	Port14       = 0o14
	PortMNKeyIn  = 0o15
	PortNavKeyIn = 0o16
	Port30       = 0o30
	Port31       = 0o31
	Port32       = 0o32
	Port33       = 0o33
	Port34       = 0o34
	Port35       = 0o35
	Port163      = 0o163
)

// NumPorts is the size of the memory-mapped channel address space.
const NumPorts = device.NumChannels

// Controller owns the 256-slot channel table and the two attached
// peripherals (display and downlink); reads and writes are filtered
// through per-port rules before reaching the shared table or a
// peripheral.
type Controller struct {
	portMap  [NumPorts]uint16
	display  device.Peripheral
	downlink device.Peripheral
}

// New creates a controller with both peripherals attached and the
// calibration channels (0o30-0o33) preset to their power-on values.
func New(display, downlink device.Peripheral) *Controller {
	c := &Controller{display: display, downlink: downlink}
	c.resetCalibration()
	return c
}

func (c *Controller) resetCalibration() {
	c.portMap[Port30] = 0o37777
	c.portMap[Port31] = 0o77777
	c.portMap[Port32] = 0o77777
	c.portMap[Port33] = 0o77777
}

func (c *Controller) Reset() {
	c.portMap = [NumPorts]uint16{}
	c.resetCalibration()
}

// ReadPort handles a read from channel `port`, applying per-channel
// filtering before falling back to the shared port table.
func (c *Controller) ReadPort(port int) uint16 {
	switch port {
	case PortLoScalar, PortHiScalar:
		return 0
	case PortPYJets, PortRollJets:
		return c.portMap[port]
	case PortDSKY:
		slog.Warn("unexpected read from display unit interface")
		return 0
	case PortDSALMOUT:
		return c.portMap[PortDSALMOUT]
	case Port12:
		return c.portMap[Port12]
	case Port13:
		return c.portMap[Port13] & 0x47CF
	case Port14:
		return c.portMap[Port14]
	case PortMNKeyIn:
		if c.display != nil {
			return c.display.Read(uint16(port))
		}
		return 0
	case PortNavKeyIn:
		return 0
	case Port31:
		return 0o77777
	case Port32:
		displayData := uint16(0o77777)
		if c.display != nil {
			displayData = c.display.Read(uint16(port))
		}
		return displayData | (c.portMap[Port32] & 0o57777)
	case Port33:
		return 0o77777
	case Port34, Port35:
		if c.downlink != nil {
			return c.downlink.Read(uint16(port))
		}
		return 0o77777
	case Port163:
		if c.display != nil {
			return c.display.Read(uint16(port))
		}
		return 0o77777
	default:
		slog.Error("unknown I/O port read", "port", port)
		return c.portMap[port]
	}
}

// WritePort mirrors the write to both attached peripherals, then applies
// per-channel table update rules.
func (c *Controller) WritePort(port int, value uint16) {
	if c.display != nil {
		c.display.Write(uint16(port), value)
	}
	if c.downlink != nil {
		c.downlink.Write(uint16(port), value)
	}

	switch port {
	case PortDSALMOUT:
		c.portMap[PortDSALMOUT] = value
	case Port13:
		c.portMap[Port13] = value
	case Port32:
		slog.Warn("write attempt to read-only port CHAN32")
	default:
		c.portMap[port] = value
	}
}

// InterruptStatus aggregates pending interrupt flags from both attached
// peripherals.
func (c *Controller) InterruptStatus() uint16 {
	var status uint16
	if c.display != nil {
		status |= c.display.IsInterrupt()
	}
	if c.downlink != nil {
		status |= c.downlink.IsInterrupt()
	}
	return status
}
