package decoder

import "testing"

func TestDecodeSimpleOverrides(t *testing.T) {
	tests := []struct {
		name string
		data uint16
		want Mnemonic
	}{
		{"TC", 0o00000, TC},
		{"RELINT", 0o00003, RELINT},
		{"INHINT", 0o00004, INHINT},
		{"EXTEND", 0o00006, EXTEND},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(0, tc.data)
			if err != nil {
				t.Fatalf("Decode(%#o) error: %v", tc.data, err)
			}
			if got.Mnem != tc.want {
				t.Errorf("Decode(%#o).Mnem = %v, want %v", tc.data, got.Mnem, tc.want)
			}
		})
	}
}

func TestDecodeResumeVsIndex(t *testing.T) {
	// opcode 5, extrabits 0, low 12 bits == 0o0017 -> RESUME
	data := uint16(5<<12) | 0o0017
	got, err := Decode(0, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Mnem != RESUME {
		t.Errorf("Mnem = %v, want RESUME", got.Mnem)
	}

	data2 := uint16(5<<12) | 0o0020
	got2, err := Decode(0, data2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got2.Mnem != INDEX {
		t.Errorf("Mnem = %v, want INDEX", got2.Mnem)
	}
}

func TestDecodeInvalidExtrabits(t *testing.T) {
	// extended opcode 2, extrabits 0 is invalid (only 2,3 assigned)
	data := uint16(0x8000) | uint16(2<<12)
	_, err := Decode(0, data)
	if err != ErrInvalidExtrabits {
		t.Errorf("err = %v, want ErrInvalidExtrabits", err)
	}
}

func TestDecodeExtendedReadWrite(t *testing.T) {
	data := uint16(0x8000) // opcode 0, extrabits 0
	got, err := Decode(0, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Mnem != READ {
		t.Errorf("Mnem = %v, want READ", got.Mnem)
	}

	data = uint16(0x8000) | (1 << 9) // extrabits 1 -> WRITE, mct 2
	got, err = Decode(0, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Mnem != WRITE || got.MCT != 2 {
		t.Errorf("got %v mct=%d, want WRITE mct=2", got.Mnem, got.MCT)
	}
}

func TestDecodeExtendedSuVsBzmf(t *testing.T) {
	base := uint16(0x8000) | uint16(6<<12)
	got, err := Decode(0, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Mnem != SU {
		t.Errorf("Mnem = %v, want SU", got.Mnem)
	}

	got2, err := Decode(0, base|(1<<10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got2.Mnem != BZMF {
		t.Errorf("Mnem = %v, want BZMF", got2.Mnem)
	}
}

func TestDecodeExtendedReservedTail(t *testing.T) {
	data := uint16(0x8000) | uint16(1<<12)
	got, err := Decode(0, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Mnem != Invalid {
		t.Errorf("Mnem = %v, want Invalid (reserved)", got.Mnem)
	}
}
