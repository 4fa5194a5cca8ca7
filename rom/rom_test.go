package rom

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func buildFixture() []byte {
	data := make([]byte, imageBytes)
	offset := 0
	for bank := 0; bank < numBanks; bank++ {
		for word := 0; word < bankWords; word++ {
			// Encode bank*bankWords+word as the 15-bit payload with a parity bit set.
			payload := uint16((bank*bankWords + word) & 0x7FFF)
			raw := (payload << 1) | 1
			binary.BigEndian.PutUint16(data[offset:offset+2], raw)
			offset += 2
		}
	}
	return data
}

func TestParseStripsParityAndOrdersWords(t *testing.T) {
	img, err := Parse(buildFixture())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if img[0][0] != 0 {
		t.Errorf("bank 0 word 0 = %o, want 0", img[0][0])
	}
	if img[1][5] != uint16(1*bankWords+5) {
		t.Errorf("bank 1 word 5 = %o, want %o", img[1][5], 1*bankWords+5)
	}
	if img[35][bankWords-1] != uint16(35*bankWords+bankWords-1)&0x7FFF {
		t.Errorf("bank 35 last word mismatch")
	}
}

func TestParseRejectsWrongSize(t *testing.T) {
	if _, err := Parse(make([]byte, 10)); err == nil {
		t.Fatal("expected an error for a short image")
	}
}

func TestLoadReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rope.bin")
	if err := os.WriteFile(path, buildFixture(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img[2][0] != uint16(2*bankWords)&0x7FFF {
		t.Errorf("bank 2 word 0 mismatch: %o", img[2][0])
	}
}
