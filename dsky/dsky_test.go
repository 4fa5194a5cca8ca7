package dsky

import "testing"

func TestRoundTrip(t *testing.T) {
	pkt, ok := ParsePacket(GeneratePacket(0o15, 0o17777))
	if !ok {
		t.Fatal("packet rejected as invalid")
	}
	if pkt.Addr != 0o15 {
		t.Errorf("addr = %o, want 0o15", pkt.Addr)
	}
	if pkt.Value != 0o17777 {
		t.Errorf("value = %o, want 0o17777", pkt.Value)
	}
}

func TestParsePacketRejectsBadTagBits(t *testing.T) {
	raw := GeneratePacket(0o10, 0o1234)
	raw[1] ^= 0x40 // corrupt the upper byte's tag bits
	if _, ok := ParsePacket(raw); ok {
		t.Error("expected malformed packet to be rejected")
	}
}

func TestSerializeMatchesGenerate(t *testing.T) {
	pkt := Packet{Addr: 0o33, Value: 0o4242}
	if pkt.Serialize() != GeneratePacket(0o33, 0o4242) {
		t.Error("Serialize should match GeneratePacket for the same fields")
	}
}
