package peripheral

import (
	"testing"

	"github.com/apollo-agc/ragc-go/memory"
)

func TestDisplayKeyPressRaisesInterruptUntilRead(t *testing.T) {
	d := NewDisplay()
	if d.IsInterrupt() != 0 {
		t.Fatal("no interrupt expected before a key is pushed")
	}

	d.PushKey(0o15)
	if got := d.IsInterrupt(); got != 1<<memory.InterruptKeypress1 {
		t.Errorf("interrupt flag = %o, want keypress1 bit", got)
	}

	if got := d.Read(chanMNKeyIn); got != 0o15 {
		t.Errorf("MNKEYIN = %o, want 0o15", got)
	}
	if d.IsInterrupt() != 0 {
		t.Error("interrupt should clear after the key is read")
	}
}

func TestDisplaySegmentsSnapshot(t *testing.T) {
	d := NewDisplay()
	d.Write(0o163, 0o200)
	d.Write(0o11, 0o42)

	snap := d.Segments()
	if snap[0o163] != 0o200 {
		t.Errorf("chan163 = %o, want 0o200", snap[0o163])
	}
	if snap[0o11] != 0o42 {
		t.Errorf("chan11 = %o, want 0o42", snap[0o11])
	}
}
