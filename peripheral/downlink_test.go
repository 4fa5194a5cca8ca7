package peripheral

import (
	"net"
	"testing"
	"time"

	"github.com/apollo-agc/ragc-go/dsky"
)

func TestDownlinkBroadcastsOnChan34Write(t *testing.T) {
	d, err := NewDownlink("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewDownlink: %v", err)
	}
	defer d.Stop()

	conn, err := net.Dial("tcp", d.listener.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Give the accept loop a moment to register the connection.
	time.Sleep(20 * time.Millisecond)

	d.Write(chan34, 0o4242)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var buf [4]byte
	if _, err := conn.Read(buf[:]); err != nil {
		t.Fatalf("read: %v", err)
	}

	pkt, ok := dsky.ParsePacket(buf)
	if !ok {
		t.Fatal("broadcast packet failed to parse")
	}
	if pkt.Value != 0o4242 {
		t.Errorf("value = %o, want 0o4242", pkt.Value)
	}
}

func TestDownlinkChan13WordOrder(t *testing.T) {
	d, err := NewDownlink("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewDownlink: %v", err)
	}
	defer d.Stop()

	if got := d.Read(chan13); got != 0 {
		t.Errorf("chan13 initial = %o, want 0", got)
	}
	d.Write(chan13, 1<<6)
	if got := d.Read(chan13); got != 1<<6 {
		t.Errorf("chan13 after toggle = %o, want bit 6 set", got)
	}
}

func TestDownlinkCalibrationChannelsReadMax(t *testing.T) {
	d, err := NewDownlink("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewDownlink: %v", err)
	}
	defer d.Stop()

	for _, ch := range []uint16{chan30, chan31, chan32, chan33} {
		if got := d.Read(ch); got != 0o77777 {
			t.Errorf("chan %o = %o, want 0o77777", ch, got)
		}
	}
}
