package memory

import "testing"

func TestProcessTimer2WrapsAt15Bits(t *testing.T) {
	c := NewClocks()
	c.Write(Timer2Address, 0o77777)
	c.ProcessTimer2()
	if got := c.Read(Timer2Address); got != 0 {
		t.Errorf("timer2 = %o, want 0 after wrap", got)
	}
}

func TestProcessTimer3RaisesInterruptAtHalfRange(t *testing.T) {
	c := NewClocks()
	c.Write(Timer3Address, 0o37777)
	if flags := c.ProcessTimer3(); flags != 1<<InterruptTimer3 {
		t.Errorf("flags = %o, want timer3 interrupt bit", flags)
	}
	if got := c.Read(Timer3Address); got != 0 {
		t.Errorf("timer3 = %o, want reset to 0", got)
	}
}

func TestProcessTimer4RaisesInterruptAtHalfRange(t *testing.T) {
	c := NewClocks()
	c.Write(Timer4Address, 0o37777)
	if flags := c.ProcessTimer4(); flags != 1<<InterruptTimer4 {
		t.Errorf("flags = %o, want timer4 interrupt bit", flags)
	}
}

func TestUpdateInterruptFlagsClearsWhenBothSet(t *testing.T) {
	c := NewClocks()
	c.UpdateInterruptFlags(0x1)
	c.UpdateInterruptFlags(0x2)
	if c.interruptFlags != 0 {
		t.Errorf("interruptFlags = %x, want cleared once both set", c.interruptFlags)
	}
	if c.ruptCounter != 0 {
		t.Errorf("ruptCounter = %d, want reset to 0", c.ruptCounter)
	}
}

func TestWriteTimer1Masks14Bits(t *testing.T) {
	c := NewClocks()
	c.Write(Timer1Address, 0xFFFF)
	if got := c.Read(Timer1Address); got != 0o37777 {
		t.Errorf("timer1 = %o, want 0o37777", got)
	}
}
