/*
ragc-go - display/optical/inertial special registers.

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

import "log/slog"

// Special register addresses, octal.
const (
	SpecControlDisplayX = 0o32
	SpecControlDisplayY = 0o33
	SpecControlDisplayZ = 0o34
	SpecOpticalY        = 0o35
	SpecOpticalX        = 0o36
	SpecInertialX       = 0o37
	SpecInertialY       = 0o40
	SpecInertialZ       = 0o41
	SpecDataInput       = 0o45
	SpecNavRadar        = 0o46
	SpecGyroCtrl        = 0o47
	SpecControlXCmd     = 0o50
	SpecControlYCmd     = 0o51
	SpecControlZCmd     = 0o52
	SpecOpticalYCmd     = 0o53
	SpecOpticalXCmd     = 0o54
	SpecThrust          = 0o55
	SpecMaintenance     = 0o56
	SpecDataOutput      = 0o57
	SpecAltitude        = 0o60
)

// readOnlySpecial is the set of telemetry registers the CPU can read but
// never write; a write attempt is logged and discarded.
var readOnlySpecial = map[int]bool{
	SpecControlDisplayX: true,
	SpecControlDisplayY: true,
	SpecControlDisplayZ: true,
	SpecOpticalX:        true,
	SpecOpticalY:        true,
	SpecInertialX:       true,
	SpecInertialY:       true,
	SpecInertialZ:       true,
}

// SpecialRegisters models the display/optical/inertial platform block and
// the command registers that drive them.
type SpecialRegisters struct {
	controlDisplay [3]uint16 // X, Y, Z
	opticalSensors [2]uint16 // X, Y
	inertialPlat   [3]uint16 // X, Y, Z
}

func NewSpecialRegisters() *SpecialRegisters {
	return &SpecialRegisters{}
}

func (s *SpecialRegisters) Reset() {
	*s = SpecialRegisters{}
}

func (s *SpecialRegisters) Read(addr int) uint16 {
	switch addr {
	case SpecControlDisplayX:
		return s.controlDisplay[0]
	case SpecControlDisplayY:
		return s.controlDisplay[1]
	case SpecControlDisplayZ:
		return s.controlDisplay[2]
	case SpecOpticalX:
		return s.opticalSensors[0]
	case SpecOpticalY:
		return s.opticalSensors[1]
	case SpecInertialX:
		return s.inertialPlat[0]
	case SpecInertialY:
		return s.inertialPlat[1]
	case SpecInertialZ:
		return s.inertialPlat[2]
	case SpecControlXCmd, SpecControlYCmd, SpecControlZCmd:
		return 0
	default:
		slog.Error("invalid special register read", "addr", addr)
		return 0
	}
}

func (s *SpecialRegisters) Write(addr int, value uint16) {
	if readOnlySpecial[addr] {
		slog.Warn("write attempt to read-only special register", "addr", addr)
		return
	}
	switch addr {
	case SpecControlXCmd, SpecControlYCmd, SpecControlZCmd,
		SpecOpticalYCmd, SpecOpticalXCmd, SpecThrust, SpecMaintenance,
		SpecDataOutput, SpecAltitude, SpecDataInput, SpecNavRadar, SpecGyroCtrl:
		// Command/output registers: accepted, not separately modeled.
	default:
		slog.Error("unsupported special register write", "addr", addr)
	}
}
