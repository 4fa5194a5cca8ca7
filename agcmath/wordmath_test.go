package agcmath

import "testing"

func TestAdjustOverflowPositive(t *testing.T) {
	for value := uint32(0x4000); value < 0x7FFF; value++ {
		word := uint16(value)
		if got := AdjustOverflow(word); got != word&0x3FFF {
			t.Fatalf("AdjustOverflow(%#x) = %#x, want %#x", word, got, word&0x3FFF)
		}
	}
}

func TestAdjustOverflowNegative(t *testing.T) {
	for value := uint32(0x8000); value < 0xBFFF; value++ {
		word := uint16(value)
		if got := AdjustOverflow(word); got != word|0xC000 {
			t.Fatalf("AdjustOverflow(%#x) = %#x, want %#x", word, got, word|0xC000)
		}
	}
}

func TestAddS15EndAroundCarry(t *testing.T) {
	tests := []struct {
		op1, op2, want uint16
	}{
		{0x0001, 0x0001, 0x0002},
		{0x7FFF, 0x0001, 0x0001}, // -0 + 1 == 1
		{0x7FFF, 0x7FFF, 0x7FFF}, // -0 + -0 == -0
	}
	for _, tc := range tests {
		if got := AddS15(tc.op1, tc.op2); got != tc.want {
			t.Errorf("AddS15(%#o, %#o) = %#o, want %#o", tc.op1, tc.op2, got, tc.want)
		}
	}
}

func TestToFromAGCRoundTrip(t *testing.T) {
	for _, v := range []int16{0, 1, -1, 100, -100, 0x3FFF, -0x3FFF} {
		word := ToAGC(v)
		if got := FromAGC(word); got != v {
			t.Errorf("round trip %d -> %#o -> %d", v, word, got)
		}
	}
}

func TestFromAGCNegativeZero(t *testing.T) {
	if got := FromAGC(0x7FFF); got != 0 {
		t.Errorf("FromAGC(negative zero) = %d, want 0", got)
	}
}
