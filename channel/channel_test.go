package channel

import "testing"

type fakePeripheral struct {
	reads  map[uint16]uint16
	writes map[uint16]uint16
	irq    uint16
}

func newFakePeripheral() *fakePeripheral {
	return &fakePeripheral{reads: map[uint16]uint16{}, writes: map[uint16]uint16{}}
}

func (f *fakePeripheral) Read(ch uint16) uint16     { return f.reads[ch] }
func (f *fakePeripheral) Write(ch uint16, v uint16) { f.writes[ch] = v }
func (f *fakePeripheral) IsInterrupt() uint16       { return f.irq }

func TestControllerCalibrationChannels(t *testing.T) {
	c := New(nil, nil)
	if got := c.ReadPort(Port30); got != 0o37777 {
		t.Errorf("Port30 calibration = %o, want 0o37777", got)
	}
	if got := c.ReadPort(Port31); got != 0o77777 {
		t.Errorf("Port31 read = %o, want 0o77777", got)
	}
}

func TestControllerMNKeyInRoutesToDisplay(t *testing.T) {
	display := newFakePeripheral()
	display.reads[PortMNKeyIn] = 0o12345
	c := New(display, nil)
	if got := c.ReadPort(PortMNKeyIn); got != 0o12345 {
		t.Errorf("MNKeyIn = %o, want 0o12345", got)
	}
}

func TestControllerChan13Masking(t *testing.T) {
	c := New(nil, nil)
	c.WritePort(Port13, 0xFFFF)
	if got := c.ReadPort(Port13); got != (0xFFFF & 0x47CF) {
		t.Errorf("CHAN13 masked read = %#x, want %#x", got, 0xFFFF&0x47CF)
	}
}

func TestControllerChan32IsReadOnly(t *testing.T) {
	c := New(nil, nil)
	c.WritePort(Port32, 0o1111)
	if got := c.portMap[Port32]; got != 0o77777 {
		t.Errorf("CHAN32 write should be discarded, table = %o", got)
	}
}

func TestControllerDownlinkRouting(t *testing.T) {
	downlink := newFakePeripheral()
	c := New(nil, downlink)
	c.WritePort(Port34, 0o5555)
	if downlink.writes[Port34] != 0o5555 {
		t.Errorf("downlink did not receive CHAN34 write")
	}
}

func TestControllerInterruptAggregation(t *testing.T) {
	display := newFakePeripheral()
	display.irq = 1 << 2
	downlink := newFakePeripheral()
	downlink.irq = 1 << 5
	c := New(display, downlink)
	if got := c.InterruptStatus(); got != (1<<2 | 1<<5) {
		t.Errorf("interrupt aggregation = %o", got)
	}
}
