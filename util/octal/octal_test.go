package octal

import (
	"strings"
	"testing"
)

func TestFormatWord15ZeroPads(t *testing.T) {
	var b strings.Builder
	FormatWord15(&b, 0o52)
	if got := b.String(); got != "00052" {
		t.Errorf("FormatWord15(0o52) = %q, want 00052", got)
	}
}

func TestFormatWord16CarriesOverflowBit(t *testing.T) {
	var b strings.Builder
	FormatWord16(&b, 0x8001)
	if got := b.String(); got != "100001" {
		t.Errorf("FormatWord16(0x8001) = %q, want 100001", got)
	}
}

func TestFormatWords(t *testing.T) {
	var b strings.Builder
	FormatWords(&b, []uint16{1, 2})
	if got := b.String(); got != "00001 00002" {
		t.Errorf("FormatWords = %q, want %q", got, "00001 00002")
	}
}
