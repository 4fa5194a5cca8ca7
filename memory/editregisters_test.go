package memory

import "testing"

func TestEditCycleLeft(t *testing.T) {
	e := NewEditRegisters()
	e.Write(EditCycleLeft, 0o40001)
	if got := e.Read(EditCycleLeft); got != 0o00003 {
		t.Errorf("cycle left = %o, want 0o00003", got)
	}
}

func TestEditCycleRight(t *testing.T) {
	e := NewEditRegisters()
	e.Write(EditCycleRight, 0o00003)
	if got := e.Read(EditCycleRight); got != 0o40001 {
		t.Errorf("cycle right = %o, want 0o40001", got)
	}
}

func TestEditShiftPreservesSign(t *testing.T) {
	e := NewEditRegisters()
	e.Write(EditShift, 0o40002)
	if got := e.Read(EditShift); got != 0o60001 {
		t.Errorf("shift = %o, want 0o60001", got)
	}
}

func TestEditOp(t *testing.T) {
	e := NewEditRegisters()
	e.Write(EditOp, 0o777<<7)
	if got := e.Read(EditOp); got != 0o177 {
		t.Errorf("edit op = %o, want 0o177", got)
	}
}
